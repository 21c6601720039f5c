// Command cpterm runs a program under a pseudo-terminal and translates
// between the program's codepage and the local UTF-8 terminal, in the manner
// of luit.
//
//	cpterm [-config dir] [-codepage name] [-debug] [-log file] [--] command [args...]
//
// Settings come from codepage.json in the config directory and are reloaded
// when the file changes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/config"
	"github.com/stlalpha/codepage/internal/logging"
	"github.com/stlalpha/codepage/internal/session"
)

func main() {
	var configPath, codepageName, logPath string
	var debug bool
	flag.StringVar(&configPath, "config", "configs", "Directory holding codepage.json")
	flag.StringVar(&codepageName, "codepage", "", "Codepage of the child program (overrides codepage.json)")
	flag.StringVar(&logPath, "log", "cpterm.log", "Log file; the terminal itself carries the child's output")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("ERROR: Failed to open log file %s: %v", logPath, err)
	}
	log.SetOutput(logFile)

	logging.EnableFromEnv()
	if debug {
		logging.SetDebug(true)
	}

	cfg, err := config.LoadTerminalConfig(configPath)
	if err != nil {
		log.Printf("ERROR: %v", err)
	}
	if cfg.Debug {
		logging.SetDebug(true)
	}

	cp := cfg.ResolveCodepage()
	if codepageName != "" {
		cp, err = codepage.Lookup(codepageName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cpterm: %v\n", err)
			os.Exit(2)
		}
	}

	tr := codepage.DefaultTranslator()
	if err := tr.SetActive(cp); err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		shell := os.Getenv("SHELL")
		if shell == "" {
			shell = "/bin/sh"
		}
		args = []string{shell}
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(os.Environ(), "CPTERM_CODEPAGE="+cp.String())

	registry := session.NewRegistry()
	s := session.New(args[0], tr, cfg.KeyboardOptions())
	s.SetSubstitute(cfg.SubstituteByte())
	registry.Register(s)

	watcher, err := NewConfigWatcher(configPath, tr, registry, codepageName != "", debug)
	if err != nil {
		log.Printf("WARN: Config hot reload disabled: %v", err)
	}

	exitCode := 0
	err = runBridge(cmd, s)
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		log.Printf("INFO: %s exited with status %d", args[0], exitErr.ExitCode())
		exitCode = exitErr.ExitCode()
	default:
		log.Printf("ERROR: %v", err)
		fmt.Fprintf(os.Stderr, "cpterm: %v\n", err)
		exitCode = 1
	}

	if watcher != nil {
		watcher.Stop()
	}
	registry.Unregister(s.ID)
	s.Close()
	logFile.Close()
	os.Exit(exitCode)
}
