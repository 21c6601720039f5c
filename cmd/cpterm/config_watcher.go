package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/config"
	"github.com/stlalpha/codepage/internal/logging"
	"github.com/stlalpha/codepage/internal/session"
)

// ConfigWatcher watches codepage.json and applies changes to live sessions.
type ConfigWatcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	watcherDone chan bool
	configPath  string
	translator  *codepage.Translator
	sessions    *session.Registry

	// pinned is set when the codepage came from the command line; reloads
	// then leave the selection alone.
	pinned    bool
	debugFlag bool
}

// NewConfigWatcher creates a new configuration file watcher.
func NewConfigWatcher(configPath string, tr *codepage.Translator, sessions *session.Registry, pinned, debugFlag bool) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	cw := &ConfigWatcher{
		watcher:     watcher,
		watcherDone: make(chan bool),
		configPath:  configPath,
		translator:  tr,
		sessions:    sessions,
		pinned:      pinned,
		debugFlag:   debugFlag,
	}

	// Watch the directory so editors that replace the file are seen too
	if err := watcher.Add(configPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", configPath, err)
	}
	log.Printf("INFO: Watching %s for config changes (auto-reload enabled)", configPath)

	go cw.watchLoop(watcher)

	return cw, nil
}

// Stop stops the configuration file watcher.
func (cw *ConfigWatcher) Stop() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.watcher == nil {
		return
	}

	select {
	case <-cw.watcherDone:
		// already closed
	default:
		close(cw.watcherDone)
	}

	cw.watcher.Close()
	cw.watcher = nil
	log.Printf("INFO: Configuration file watcher stopped")
}

// watchLoop handles file system events for the configuration directory.
func (cw *ConfigWatcher) watchLoop(w *fsnotify.Watcher) {
	// Debounce timer to avoid reloading on rapid successive writes
	var debounceTimer *time.Timer
	debounceDuration := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				name := event.Name
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					cw.handleConfigChange(name)
				})
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("ERROR: Config file watcher error: %v", err)

		case <-cw.watcherDone:
			log.Printf("INFO: Stopping config file watcher")
			return
		}
	}
}

// handleConfigChange reloads the configuration when codepage.json changed.
func (cw *ConfigWatcher) handleConfigChange(path string) {
	filename := filepath.Base(path)
	if !strings.EqualFold(filename, config.FileName) {
		logging.Debug("Ignoring change to %s", filename)
		return
	}
	log.Printf("INFO: Config file change detected: %s", filename)
	cw.reloadTerminalConfig()
}

// reloadTerminalConfig applies codepage.json to the translator and to every
// registered session. The translator is refreshed as soon as the codepage is
// switched, so sessions drop partial UTF-8 sequences before decoding more.
func (cw *ConfigWatcher) reloadTerminalConfig() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	cfg, err := config.LoadTerminalConfig(cw.configPath)
	if err != nil {
		log.Printf("ERROR: Failed to reload %s: %v", config.FileName, err)
		return
	}

	logging.SetDebug(cw.debugFlag || cfg.Debug)

	if cw.pinned {
		log.Printf("INFO: Codepage pinned to %s by command line; ignoring %q", cw.translator.Active(), cfg.Codepage)
	} else if err := cw.translator.SetActive(cfg.ResolveCodepage()); err != nil {
		log.Printf("ERROR: Failed to select codepage: %v", err)
		return
	}
	// Decoders must drop a partial sequence before they see bytes in the
	// new codepage.
	cw.translator.Refresh()

	sub := cfg.SubstituteByte()
	opts := cfg.KeyboardOptions()
	for _, s := range cw.sessions.ListActive() {
		s.SetSubstitute(sub)
		s.Keyboard().SetOptions(opts)
	}

	log.Printf("INFO: %s reloaded successfully (codepage %s)", config.FileName, cw.translator.Active())
}
