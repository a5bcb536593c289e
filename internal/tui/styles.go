package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"
	"github.com/xonecas/smartline/internal/highlight"
	"github.com/xonecas/smartline/internal/tui/modal"
)

// Styles holds the lipgloss styles derived from the theme palette.
type Styles struct {
	Prompt    lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Scroll    lipgloss.Style
}

func newStyles(p highlight.Palette) Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true),
		Selection: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Fg)).
			Background(lipgloss.Color(p.SelBg)),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim)),
	}
}

func helpStyles(p highlight.Palette) help.Styles {
	s := help.DefaultDarkStyles()
	key := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent))
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim))
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Border))
	s.ShortKey, s.ShortDesc, s.ShortSeparator = key, desc, sep
	s.FullKey, s.FullDesc, s.FullSeparator = key, desc, sep
	return s
}

func modalColors(p highlight.Palette) modal.Colors {
	return modal.Colors{
		Fg:     p.Fg,
		Bg:     p.Bg,
		Dim:    p.Dim,
		SelFg:  p.Fg,
		SelBg:  p.SelBg,
		Border: p.Border,
	}
}
