package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tsawler/dugout"
	"github.com/tsawler/dugout/fetch"
	"github.com/tsawler/dugout/model"
	"github.com/tsawler/dugout/store"
)

// commandContext carries lazily-initialized state shared by subcommands.
type commandContext struct {
	configFlag  *string
	verboseFlag *bool
	jsonLogFlag *bool

	cfg    *Config
	logger *slog.Logger
}

func newCommandContext(configFlag *string, verboseFlag, jsonLogFlag *bool) *commandContext {
	return &commandContext{configFlag: configFlag, verboseFlag: verboseFlag, jsonLogFlag: jsonLogFlag}
}

func (c *commandContext) ensureConfig() (*Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := loadConfig(*c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	level := slog.LevelInfo
	if c.verboseFlag != nil && *c.verboseFlag {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if c.jsonLogFlag != nil && *c.jsonLogFlag {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	c.logger = slog.New(handler)
	return c.logger
}

// openStore opens the archive database, creating its directory first.
func (c *commandContext) openStore() (*store.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Archive.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}
	return store.Open(cfg.Archive.Path)
}

// clientOptions maps the fetch section of the config onto client options.
// Zero values defer to the package defaults.
func clientOptions(cfg *Config) fetch.ClientOptions {
	return fetch.ClientOptions{
		UserAgent: cfg.Fetch.UserAgent,
		Timeout:   time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		Retries:   cfg.Fetch.Retries,
	}
}

func renderOptions(cfg *Config) fetch.RenderOptions {
	return fetch.RenderOptions{
		UserAgent:      cfg.Fetch.UserAgent,
		Timeout:        time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		ScrollPasses:   cfg.Fetch.ScrollPasses,
		MinPitchTables: cfg.Fetch.MinPitchTables,
	}
}

// extractGame runs the extraction pipeline over rendered markup, applying
// optional team overrides.
func extractGame(markup, awayTeam, homeTeam string) (*model.Game, error) {
	ex := dugout.FromHTML(markup)
	if awayTeam != "" || homeTeam != "" {
		ex = ex.Teams(awayTeam, homeTeam)
	}
	defer ex.Close()
	return ex.Game()
}
