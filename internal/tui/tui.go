// Package tui hosts the smart line editor in a Bubble Tea program: one
// highlighted input line with smart selection, path completion, and a
// persistent history.
package tui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/smartline/internal/complete"
	"github.com/xonecas/smartline/internal/config"
	"github.com/xonecas/smartline/internal/highlight"
	"github.com/xonecas/smartline/internal/linestate"
	"github.com/xonecas/smartline/internal/lint"
	"github.com/xonecas/smartline/internal/store"
	"github.com/xonecas/smartline/internal/tui/modal"
)

// recallLimit bounds how many entries up/down walk through.
const recallLimit = 500

type pickerKind int

const (
	pickNone pickerKind = iota
	pickCompletion
	pickHistory
)

// Options wires the model to its collaborators. Completer and History may
// be nil; the matching features are then disabled.
type Options struct {
	Config    *config.Config
	Completer *complete.Completer
	History   *store.History
}

// Model is the application model.
type Model struct {
	width int

	buf    *linestate.Buffer
	prompt string

	completer *complete.Completer
	history   *store.History
	checker   *lint.Checker
	hl        *highlight.Highlighter
	styles    Styles
	colors    modal.Colors
	keys      keyMap
	help      help.Model

	picker     *modal.Model
	pickerKind pickerKind

	diag   *lint.Diagnostic
	notice string // one-shot message shown in the status line

	// History recall state; recall is nil when not browsing.
	recall    []store.Entry
	recallIdx int
	draft     string
}

// New creates the model from configuration.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	hier, ok := linestate.HierarchyByName(cfg.Selection.Hierarchy)
	if !ok {
		log.Warn().Str("hierarchy", cfg.Selection.Hierarchy).Msg("tui: unknown hierarchy, using basic")
	}
	buf := linestate.New("", "")
	buf.SetHierarchy(hier)

	palette := highlight.ThemePalette(cfg.UI.SyntaxTheme)
	h := help.New()
	h.Styles = helpStyles(palette)

	history := opts.History
	if !cfg.History.Enabled {
		history = nil
	}

	return Model{
		buf:       buf,
		prompt:    cfg.UI.Prompt,
		completer: opts.Completer,
		history:   history,
		checker:   lint.New(lint.DefaultRules()...),
		hl:        highlight.New(cfg.UI.Lexer, cfg.UI.SyntaxTheme),
		styles:    newStyles(palette),
		colors:    modalColors(palette),
		keys:      newKeyMap(cfg.Keys),
		help:      h,
	}
}

// Init initializes the TUI (required by BubbleTea).
func (m Model) Init() tea.Cmd {
	return nil
}

// Buffer exposes the line state, mainly for tests.
func (m Model) Buffer() *linestate.Buffer {
	return m.buf
}

// lineChanged refreshes state derived from the line text.
func (m *Model) lineChanged() {
	m.diag = m.checker.Check(m.buf.Line())
}
