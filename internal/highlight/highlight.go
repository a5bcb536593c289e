// Package highlight colors a command line with Chroma and derives the UI
// palette from the same theme.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter renders single lines with one lexer and theme.
type Highlighter struct {
	lexer chroma.Lexer // nil disables highlighting
	style *chroma.Style
	fmtr  chroma.Formatter
	bgSeq string
}

// New creates a highlighter for the named Chroma lexer, or Auto, and style. An unknown
// lexer yields a highlighter that returns text unchanged.
func New(language, theme string) *Highlighter {
	h := &Highlighter{
		style: styles.Get(theme),
		fmtr:  formatters.Get("terminal16m"),
	}
	if lex := lexers.Get(resolveLexer(language)); lex != nil {
		h.lexer = chroma.Coalesce(lex)
	}
	if h.fmtr == nil {
		h.fmtr = formatters.Fallback
	}
	h.bgSeq = hexToBgSeq(ThemeBg(theme))
	return h
}

// Line returns an ANSI-highlighted version of line. The theme background is
// re-applied after every reset so it is never lost mid-line.
func (h *Highlighter) Line(line string) string {
	if h == nil || h.lexer == nil || line == "" {
		return line
	}
	it, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}
	var buf strings.Builder
	if err := h.fmtr.Format(&buf, h.style, it); err != nil {
		return line
	}
	raw := strings.TrimRight(buf.String(), "\n")
	if h.bgSeq == "" {
		return raw
	}
	return h.bgSeq + strings.ReplaceAll(raw, "\x1b[0m", "\x1b[0m"+h.bgSeq)
}

// hexToBgSeq converts "#rrggbb" to an ANSI 24-bit background escape sequence.
func hexToBgSeq(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

func parseHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, false
	}
	return r, g, b, true
}

// ThemeBg extracts the background hex color from a Chroma style.
// Returns "" if no background is set.
func ThemeBg(theme string) string {
	sty := styles.Get(theme)
	if sty == nil {
		return ""
	}
	bg := sty.Get(chroma.Background).Background
	if !bg.IsSet() {
		return ""
	}
	return bg.String()
}
