package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	return tea.NewView(m.renderContent())
}

// renderContent produces the inline region below the scrollback: the
// prompt line, the status line, the help footer, and the picker if open.
func (m Model) renderContent() string {
	var b strings.Builder
	b.WriteString(m.renderPrompt())
	b.WriteByte('\n')
	b.WriteString(m.renderStatus())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	if m.picker != nil {
		b.WriteByte('\n')
		b.WriteString(m.picker.View(m.width))
	}
	return b.String()
}

// renderPrompt draws the highlighted line. Syntax colors are cut around the
// selection, which is drawn in the selection style; without a selection the
// cell under the cursor is reversed.
func (m Model) renderPrompt() string {
	runes := []rune(m.buf.Line())
	hl := m.hl.Line(string(runes))
	col := func(i int) int { return ansi.StringWidth(string(runes[:i])) }
	total := col(len(runes))

	sel := m.buf.Selection()
	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render(m.prompt))
	b.WriteString(ansi.Cut(hl, 0, col(sel.Start)))

	end := sel.End
	if sel.Empty() {
		cell := " "
		if sel.Start < len(runes) {
			cell = string(runes[sel.Start])
			end = sel.Start + 1
		}
		b.WriteString(m.styles.Cursor.Render(cell))
	} else {
		b.WriteString(m.styles.Selection.Render(string(runes[sel.Start:sel.End])))
	}
	if end < len(runes) {
		b.WriteString(ansi.Cut(hl, col(end), total))
	}
	return b.String()
}

// renderStatus shows the cursor or selection and the first lint problem.
func (m Model) renderStatus() string {
	left := m.statusText()
	if m.diag == nil {
		return m.styles.Status.Render(left)
	}
	return m.styles.Status.Render(left+"  ") +
		m.styles.Error.Render(fmt.Sprintf("col %d: %s", m.diag.Offset+1, m.diag.Message))
}

func (m Model) statusText() string {
	var parts []string
	if m.buf.HasSelection() {
		sel := m.buf.Selection()
		parts = append(parts, fmt.Sprintf("sel %s level %d", sel, m.buf.Depth()))
	} else {
		parts = append(parts, fmt.Sprintf("col %d", m.buf.Cursor()+1))
	}
	if m.recall != nil {
		parts = append(parts, fmt.Sprintf("history %d/%d", m.recallIdx+1, len(m.recall)))
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	return strings.Join(parts, "  ")
}
