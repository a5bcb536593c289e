// Package modal implements the filterable picker used for completion
// candidates and history search.
package modal

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Action is the result of handling a message. nil means no action.
type Action any

// ActionClose signals the picker should be dismissed.
type ActionClose struct{}

// ActionSelect signals an item was chosen.
type ActionSelect struct{ Item Item }

// Item is a single entry in the list. Value is what gets inserted into the
// line; Label is what is shown.
type Item struct {
	Label string
	Value string
	Hint  string
}

// SearchFunc is called with the current query to produce results.
type SearchFunc func(query string) []Item

// Filter returns a SearchFunc that keeps the items whose label contains
// the query, ignoring case.
func Filter(items []Item) SearchFunc {
	return func(query string) []Item {
		if query == "" {
			return items
		}
		q := strings.ToLower(query)
		var out []Item
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Label), q) {
				out = append(out, it)
			}
		}
		return out
	}
}

// Colors holds the theme colors for the picker.
type Colors struct {
	Fg     string
	Bg     string
	Dim    string
	SelFg  string
	SelBg  string
	Border string
}

const (
	debounceDelay = 150 * time.Millisecond
	maxRows       = 10
)

// debounceMsg is sent after the debounce timer fires.
type debounceMsg struct{ seq int }

// Model is a query line over a selectable list.
type Model struct {
	Title string

	query    []rune
	cursor   int
	items    []Item
	selected int

	search SearchFunc
	seq    int

	colors Colors
}

// New creates a picker and runs the initial empty-query search.
func New(title string, search SearchFunc, colors Colors) Model {
	return Model{
		Title:  title,
		search: search,
		items:  search(""),
		colors: colors,
	}
}

// Query returns the current filter text.
func (m *Model) Query() string { return string(m.query) }

// Items returns the current result list.
func (m *Model) Items() []Item { return m.items }

// Selected returns the highlighted index.
func (m *Model) Selected() int { return m.selected }

func (m *Model) debounce() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// HandleMsg processes a tea.Msg and returns an optional Action and a
// tea.Cmd the parent must dispatch.
func (m *Model) HandleMsg(msg tea.Msg) (Action, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.PasteMsg:
		m.insert(msg.Content)
		return nil, m.debounce()
	case debounceMsg:
		if msg.seq == m.seq {
			m.items = m.search(string(m.query))
			m.selected = 0
		}
	}
	return nil, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (Action, tea.Cmd) {
	switch msg.Keystroke() {
	case "esc", "ctrl+c":
		return ActionClose{}, nil
	case "enter", "tab":
		if len(m.items) == 0 {
			return nil, nil
		}
		return ActionSelect{Item: m.items[min(m.selected, len(m.items)-1)]}, nil
	case "up", "ctrl+p", "shift+tab":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "ctrl+n":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "backspace":
		if m.cursor == 0 {
			return nil, nil
		}
		m.query = append(m.query[:m.cursor-1], m.query[m.cursor:]...)
		m.cursor--
		return nil, m.debounce()
	case "ctrl+u":
		m.query, m.cursor = m.query[m.cursor:], 0
		return nil, m.debounce()
	case "left":
		m.cursor = max(m.cursor-1, 0)
	case "right":
		m.cursor = min(m.cursor+1, len(m.query))
	case "home", "ctrl+a":
		m.cursor = 0
	case "end", "ctrl+e":
		m.cursor = len(m.query)
	default:
		if msg.Text != "" {
			m.insert(msg.Text)
			return nil, m.debounce()
		}
	}
	return nil, nil
}

func (m *Model) insert(s string) {
	rs := []rune(strings.NewReplacer("\r", "", "\n", "").Replace(s))
	q := make([]rune, 0, len(m.query)+len(rs))
	q = append(q, m.query[:m.cursor]...)
	q = append(q, rs...)
	m.query = append(q, m.query[m.cursor:]...)
	m.cursor += len(rs)
}

// View renders the picker as a bordered box no wider than width.
func (m *Model) View(width int) string {
	w := max(min(width, 72), 24)
	inner := w - 4 // border + padding

	bg := lipgloss.Color(m.colors.Bg)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Dim)).Background(bg)
	sel := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.colors.SelFg)).
		Background(lipgloss.Color(m.colors.SelBg))

	lines := []string{m.renderQuery(), dim.Render(strings.Repeat("─", inner))}

	off := 0
	if m.selected >= maxRows {
		off = m.selected - maxRows + 1
	}
	for i := off; i < len(m.items) && i < off+maxRows; i++ {
		it := m.items[i]
		row := ansi.Truncate(it.Label, inner, "…")
		if i == m.selected {
			lines = append(lines, sel.Render(padRight(row, inner)))
			continue
		}
		if it.Hint != "" && ansi.StringWidth(row)+2 < inner {
			row += dim.Render("  " + ansi.Truncate(it.Hint, inner-ansi.StringWidth(row)-2, "…"))
		}
		lines = append(lines, row)
	}
	if len(m.items) == 0 {
		lines = append(lines, dim.Render("no matches"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.colors.Border)).
		Foreground(lipgloss.Color(m.colors.Fg)).
		Background(bg).
		Padding(0, 1).
		Width(w).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) renderQuery() string {
	title := m.Title
	if title != "" {
		title += " "
	}
	cur := " "
	after := ""
	if m.cursor < len(m.query) {
		cur = string(m.query[m.cursor])
		after = string(m.query[m.cursor+1:])
	}
	return title + string(m.query[:m.cursor]) + lipgloss.NewStyle().Reverse(true).Render(cur) + after
}

func padRight(s string, w int) string {
	if n := ansi.StringWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
