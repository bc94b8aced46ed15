package cotizador

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// This file holds the persistence helpers. They all follow the same policy:
// a missing or corrupt file is recovered silently by returning a fresh
// default, never surfaced as an error to the caller. Writes replace the
// whole file.

// LoadConfig reads the configuration from path. A missing or unreadable
// file yields the default configuration; older schema versions are migrated.
func LoadConfig(path string) *Config {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	loaded := &Config{}
	if err := json.Unmarshal(data, loaded); err != nil {
		log.Printf("warning: could not parse config %q, using defaults: %v", path, err)
		return cfg
	}
	loaded.migrate()
	return loaded
}

// SaveConfig writes the configuration to path, creating parent directories
// as needed.
func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// LoadHistory reads the history store from path. A missing or corrupt file
// yields an empty history.
func LoadHistory(path string) *History {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewHistory()
	}
	h, err := DecodeHistory(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: could not parse history %q, starting empty: %v", path, err)
		return NewHistory()
	}
	return h
}

// SaveHistory rewrites the whole history store at path.
func SaveHistory(path string, h *History) error {
	var buf bytes.Buffer
	if err := EncodeHistory(&buf, h); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

// LoadDraft reads the working draft from path. A missing or corrupt file
// yields a fresh draft with the configuration defaults.
func LoadDraft(path string, cfg *Config) *Draft {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewDraft(cfg)
	}
	d := &Draft{}
	if err := json.Unmarshal(data, d); err != nil {
		log.Printf("warning: could not parse draft %q, starting fresh: %v", path, err)
		return NewDraft(cfg)
	}
	return d
}

// SaveDraft persists the working draft. Called after every draft mutation,
// the command-line equivalent of the periodic autosave.
func SaveDraft(path string, d *Draft) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode draft: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}
