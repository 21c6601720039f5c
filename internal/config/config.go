package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/stlalpha/codepage/internal/codepage"
	"github.com/stlalpha/codepage/internal/keyboard"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "codepage.json"

// TerminalConfig holds the translation settings of a terminal session.
type TerminalConfig struct {
	Codepage          string `json:"codepage"`          // codepage name, see codepage.Lookup
	Substitute        string `json:"substitute"`        // sent for characters the codepage lacks
	ApplicationCursor bool   `json:"applicationCursor"` // arrows send SS3 sequences
	BackspaceSendsDel bool   `json:"backspaceSendsDel"` // Backspace sends DEL instead of BS
	NewlineMode       bool   `json:"newlineMode"`       // Enter sends CR LF
	Debug             bool   `json:"debug"`             // enable DEBUG logging
}

// DefaultTerminalConfig returns the settings used when no file exists.
func DefaultTerminalConfig() TerminalConfig {
	return TerminalConfig{
		Codepage:          codepage.Default.String(),
		Substitute:        "?",
		BackspaceSendsDel: true,
	}
}

// LoadTerminalConfig loads codepage.json from configPath. A missing file
// yields the defaults; an unreadable or malformed one yields the defaults
// and an error.
func LoadTerminalConfig(configPath string) (TerminalConfig, error) {
	filePath := filepath.Join(configPath, FileName)
	log.Printf("INFO: Loading terminal configuration from %s", filePath)

	defaultConfig := DefaultTerminalConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("WARN: %s not found at %s. Using default settings.", FileName, filePath)
			return defaultConfig, nil
		}
		return defaultConfig, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	// Initialize with defaults before unmarshalling
	config := defaultConfig
	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("ERROR: Failed to parse config JSON from %s: %v. Using default settings.", filePath, err)
		return defaultConfig, fmt.Errorf("failed to parse config JSON from %s: %w", filePath, err)
	}

	log.Printf("INFO: Successfully loaded terminal configuration from %s (codepage %s)", filePath, config.Codepage)
	return config, nil
}

// SaveTerminalConfig writes cfg to codepage.json in configPath.
func SaveTerminalConfig(configPath string, cfg TerminalConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal terminal config: %w", err)
	}
	filePath := filepath.Join(configPath, FileName)
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filePath, err)
	}
	return nil
}

// ResolveCodepage returns the configured codepage, falling back to CP437
// when the name is empty or unknown.
func (c TerminalConfig) ResolveCodepage() codepage.Codepage {
	cp, err := codepage.Lookup(c.Codepage)
	if err != nil {
		log.Printf("WARN: %v. Falling back to %s.", err, codepage.Default)
		return codepage.Default
	}
	return cp
}

// KeyboardOptions returns the keyboard modes from the configuration.
func (c TerminalConfig) KeyboardOptions() keyboard.Options {
	return keyboard.Options{
		ApplicationCursor: c.ApplicationCursor,
		BackspaceSendsDEL: c.BackspaceSendsDel,
		NewlineMode:       c.NewlineMode,
	}
}

// SubstituteByte returns the substitute as a single byte. It must be one
// printable ASCII character; anything else falls back to '?'.
func (c TerminalConfig) SubstituteByte() byte {
	if len(c.Substitute) == 1 && c.Substitute[0] >= 0x20 && c.Substitute[0] < 0x7F {
		return c.Substitute[0]
	}
	if c.Substitute != "" {
		log.Printf("WARN: substitute %q is not a single printable ASCII character. Using '?'.", c.Substitute)
	}
	return '?'
}
