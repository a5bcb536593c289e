package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/smartline/internal/complete"
	"github.com/xonecas/smartline/internal/config"
	"github.com/xonecas/smartline/internal/store"
	"github.com/xonecas/smartline/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "smartline: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config.toml (default <data dir>/config.toml)")
	root := flag.String("root", "", "directory completions resolve against (default cwd)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(dataDir, "smartline.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger, err := newLogger(logFile, cfg.Log.Level)
	if err != nil {
		return err
	}
	log.Logger = logger

	var history *store.History
	if cfg.History.Enabled {
		history, err = store.Open(filepath.Join(dataDir, "history.db"), cfg.History.MaxEntries)
		if err != nil {
			// Non-fatal: run without history.
			log.Warn().Err(err).Msg("history unavailable")
		}
	}
	defer history.Close()

	completer, err := complete.New(complete.Options{
		Root:             *root,
		CaseSensitive:    cfg.Completion.CaseSensitive,
		RespectGitignore: cfg.Completion.RespectGitignore,
		MaxCandidates:    cfg.Completion.MaxCandidates,
	})
	if err != nil {
		return fmt.Errorf("init completion: %w", err)
	}

	log.Info().Str("hierarchy", cfg.Selection.Hierarchy).Str("theme", cfg.UI.SyntaxTheme).Msg("starting")
	p := tea.NewProgram(tui.New(tui.Options{
		Config:    cfg,
		Completer: completer,
		History:   history,
	}))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// newLogger builds the file logger at the named level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
