package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/smartline/internal/complete"
	"github.com/xonecas/smartline/internal/tui/modal"
)

const completeTimeout = 2 * time.Second

// completionMsg carries the result of a background directory lookup.
type completionMsg struct {
	token  string
	cursor int
	result complete.Result
	err    error
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			return m.updatePicker(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.SetWidth(msg.Width)

	case tea.PasteMsg:
		m.edit(func() { m.buf.InsertText(msg.Content) })

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case completionMsg:
		m.applyCompletion(msg)
	}
	return m, nil
}

// handleKeyPress dispatches configurable bindings first, then the fixed
// editing keys, then plain text input.
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.Extend):
		if !m.buf.ExtendSelection() {
			log.Debug().Str("line", m.buf.Line()).Msg("tui: selection already covers the line")
		}
		return m, nil
	case key.Matches(msg, m.keys.Retract):
		m.buf.RetractSelection()
		return m, nil
	case key.Matches(msg, m.keys.Complete):
		return m, m.completeCmd()
	case key.Matches(msg, m.keys.HistorySearch):
		m.openHistoryPicker()
		return m, nil
	case key.Matches(msg, m.keys.HistoryPrev):
		m.recallOlder()
		return m, nil
	case key.Matches(msg, m.keys.HistoryNext):
		m.recallNewer()
		return m, nil
	}

	if handler := editKeyHandlers()[msg.Keystroke()]; handler != nil {
		m.edit(func() { handler(&m) })
		return m, nil
	}
	if msg.Text != "" {
		m.edit(func() { m.buf.InsertText(msg.Text) })
	}
	return m, nil
}

// edit runs a line mutation and leaves history browsing.
func (m *Model) edit(fn func()) {
	fn()
	m.recall = nil
	m.lineChanged()
}

// submit records the line, prints it above the prompt, and starts a new one.
func (m *Model) submit() tea.Cmd {
	line := m.buf.Line()
	m.history.Add(line)
	log.Info().Str("line", line).Msg("tui: submit")

	m.buf.Reset()
	m.recall = nil
	m.lineChanged()
	return tea.Println(m.styles.Scroll.Render(m.prompt + line))
}

// ---------------------------------------------------------------------------
// Completion
// ---------------------------------------------------------------------------

// completeCmd looks up candidates for the token at the cursor off the
// update loop.
func (m *Model) completeCmd() tea.Cmd {
	if m.completer == nil {
		return nil
	}
	c := m.completer
	tok := m.buf.Token()
	cursor := m.buf.Cursor()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), completeTimeout)
		defer cancel()
		res, err := c.Complete(ctx, tok)
		return completionMsg{token: tok, cursor: cursor, result: res, err: err}
	}
}

func (m *Model) applyCompletion(msg completionMsg) {
	if msg.cursor != m.buf.Cursor() || msg.token != m.buf.Token() {
		log.Debug().Str("token", msg.token).Msg("tui: dropping stale completion")
		return
	}
	if msg.err != nil {
		log.Warn().Err(msg.err).Str("token", msg.token).Msg("tui: completion failed")
		m.notice = "no completions"
		return
	}
	res := msg.result
	switch {
	case len(res.Candidates) == 0:
		m.notice = "no completions"
	case res.Unique():
		m.edit(func() { m.buf.CompleteToken(res.Candidates[0].Replacement) })
	case len([]rune(res.Prefix)) > len([]rune(res.Token)):
		m.edit(func() { m.buf.CompleteToken(res.Prefix) })
	default:
		items := make([]modal.Item, len(res.Candidates))
		for i, c := range res.Candidates {
			it := modal.Item{Label: c.Name, Value: c.Replacement}
			if c.Dir {
				it.Hint = "dir"
			}
			items[i] = it
		}
		m.openPicker(pickCompletion, "complete", modal.Filter(items))
	}
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

func (m *Model) recallOlder() {
	if m.recall == nil {
		entries := m.history.Recent(recallLimit)
		if len(entries) == 0 {
			return
		}
		m.recall = entries
		m.recallIdx = len(entries)
		m.draft = m.buf.Line()
	}
	if m.recallIdx == 0 {
		return
	}
	m.recallIdx--
	m.buf.Set(m.recall[m.recallIdx].Line, "")
	m.lineChanged()
}

func (m *Model) recallNewer() {
	if m.recall == nil {
		return
	}
	m.recallIdx++
	if m.recallIdx >= len(m.recall) {
		m.buf.Set(m.draft, "")
		m.recall = nil
	} else {
		m.buf.Set(m.recall[m.recallIdx].Line, "")
	}
	m.lineChanged()
}

func (m *Model) openHistoryPicker() {
	if m.history == nil {
		return
	}
	h := m.history
	m.openPicker(pickHistory, "history", func(query string) []modal.Item {
		entries := h.Search(query, recallLimit)
		items := make([]modal.Item, len(entries))
		for i, e := range entries {
			items[i] = modal.Item{Label: e.Line, Value: e.Line, Hint: e.Created.Format("Jan 02 15:04")}
		}
		return items
	})
}

// ---------------------------------------------------------------------------
// Picker
// ---------------------------------------------------------------------------

func (m *Model) openPicker(kind pickerKind, title string, search modal.SearchFunc) {
	p := modal.New(title, search, m.colors)
	m.picker = &p
	m.pickerKind = kind
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.picker.HandleMsg(msg)
	switch a := action.(type) {
	case modal.ActionClose:
		m.picker = nil
	case modal.ActionSelect:
		kind := m.pickerKind
		m.picker = nil
		switch kind {
		case pickCompletion:
			m.edit(func() { m.buf.CompleteToken(a.Item.Value) })
		case pickHistory:
			m.edit(func() { m.buf.Set(a.Item.Value, "") })
		}
	}
	return m, cmd
}
