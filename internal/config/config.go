// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/xonecas/smartline/internal/linestate"
)

// Config is the root configuration structure.
type Config struct {
	UI         UIConfig         `toml:"ui"`
	Selection  SelectionConfig  `toml:"selection"`
	Completion CompletionConfig `toml:"completion"`
	History    HistoryConfig    `toml:"history"`
	Keys       KeysConfig       `toml:"keys"`
	Log        LogConfig        `toml:"log"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma style used to highlight the line. UI chrome
	// colors are derived from it via highlight.ThemePalette.
	SyntaxTheme string `toml:"syntax_theme"`
	// Lexer is the Chroma lexer name for the command line ("batch", "bash", ...).
	Lexer  string `toml:"lexer"`
	Prompt string `toml:"prompt"`
}

// SelectionConfig picks the smart select hierarchy.
type SelectionConfig struct {
	Hierarchy string `toml:"hierarchy"` // "basic" or "shell"
}

// CompletionConfig holds path completion settings.
type CompletionConfig struct {
	CaseSensitive    bool `toml:"case_sensitive"`
	RespectGitignore bool `toml:"respect_gitignore"`
	MaxCandidates    int  `toml:"max_candidates"`
}

// HistoryConfig holds submitted-line history settings.
type HistoryConfig struct {
	Enabled    bool `toml:"enabled"`
	MaxEntries int  `toml:"max_entries"`
}

// KeysConfig lists the keystrokes bound to each action.
type KeysConfig struct {
	Extend        []string `toml:"extend"`
	Retract       []string `toml:"retract"`
	Complete      []string `toml:"complete"`
	HistorySearch []string `toml:"history_search"`
	Submit        []string `toml:"submit"`
	Quit          []string `toml:"quit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			SyntaxTheme: "vulcan",
			Lexer:       "batch",
			Prompt:      "> ",
		},
		Selection: SelectionConfig{Hierarchy: "basic"},
		Completion: CompletionConfig{
			RespectGitignore: true,
			MaxCandidates:    200,
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 1000,
		},
		Keys: KeysConfig{
			Extend:        []string{"shift+up"},
			Retract:       []string{"shift+down"},
			Complete:      []string{"tab"},
			HistorySearch: []string{"ctrl+r"},
			Submit:        []string{"enter"},
			Quit:          []string{"ctrl+c", "ctrl+d"},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from a TOML file on top of the defaults and
// applies environment variable overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return finish(cfg)
}

// LoadOrDefault loads path when it exists and falls back to the defaults
// otherwise. An empty path means <data dir>/config.toml.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.toml")
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return finish(Default())
	}
	return Load(path)
}

func finish(cfg *Config) (*Config, error) {
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if _, ok := linestate.HierarchyByName(c.Selection.Hierarchy); !ok {
		errs = append(errs, fmt.Errorf("selection.hierarchy=%q must be \"basic\" or \"shell\"", c.Selection.Hierarchy))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
	}
	if c.Completion.MaxCandidates < 0 {
		errs = append(errs, fmt.Errorf("completion.max_candidates=%d must not be negative", c.Completion.MaxCandidates))
	}
	if c.History.MaxEntries < 0 {
		errs = append(errs, fmt.Errorf("history.max_entries=%d must not be negative", c.History.MaxEntries))
	}

	for _, k := range []struct {
		name string
		keys []string
	}{
		{"extend", c.Keys.Extend},
		{"retract", c.Keys.Retract},
		{"complete", c.Keys.Complete},
		{"history_search", c.Keys.HistorySearch},
		{"submit", c.Keys.Submit},
		{"quit", c.Keys.Quit},
	} {
		if len(k.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: at least one key is required", k.name))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"SMARTLINE_HIERARCHY", func(v string) { cfg.Selection.Hierarchy = v }},
		{"SMARTLINE_LOG_LEVEL", func(v string) { cfg.Log.Level = v }},
		{"SMARTLINE_THEME", func(v string) { cfg.UI.SyntaxTheme = v }},
	} {
		if v := os.Getenv(setter.env); v != "" {
			setter.apply(v)
		}
	}
}

// DataDir returns the path to the smartline data directory (~/.config/smartline).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "smartline"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
