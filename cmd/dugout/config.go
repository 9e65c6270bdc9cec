package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Output contains record output settings.
type Output struct {
	Format        string `toml:"format"`
	IncludeHeader bool   `toml:"include_header"`
	Pretty        bool   `toml:"pretty"`
}

// Fetch contains document retrieval settings.
type Fetch struct {
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Retries        int    `toml:"retries"`
	ScrollPasses   int    `toml:"scroll_passes"`
	MinPitchTables int    `toml:"min_pitch_tables"`
}

// Archive contains local archive settings.
type Archive struct {
	Path string `toml:"path"`
}

// Config is the CLI configuration.
type Config struct {
	Output  Output  `toml:"output"`
	Fetch   Fetch   `toml:"fetch"`
	Archive Archive `toml:"archive"`
}

// defaultConfig returns the built-in configuration.
func defaultConfig() Config {
	return Config{
		Output: Output{
			Format:        "xlsx",
			IncludeHeader: true,
		},
		Archive: Archive{
			Path: "~/.local/share/dugout/archive.db",
		},
	}
}

// loadConfig parses the configuration file at path, or the default
// location when path is empty. A missing file yields the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		expanded, err := expandPath("~/.config/dugout/config.toml")
		if err != nil {
			return "", false, err
		}
		path = expanded
	} else {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		path = expanded
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return path, true, nil
}

func (c *Config) normalize() error {
	expanded, err := expandPath(c.Archive.Path)
	if err != nil {
		return err
	}
	c.Archive.Path = expanded
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = "xlsx"
	}
	return nil
}

func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return filepath.Abs(path)
}
