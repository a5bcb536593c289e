package tui

// editKeyHandlers maps fixed editing keystrokes to buffer operations. Every
// one of them drops the selection.
func editKeyHandlers() map[string]func(*Model) {
	return map[string]func(*Model){
		"backspace": func(m *Model) { m.buf.DeleteBack() },
		"delete":    func(m *Model) { m.buf.DeleteForward() },
		"left":      func(m *Model) { m.buf.MoveLeft() },
		"ctrl+b":    func(m *Model) { m.buf.MoveLeft() },
		"right":     func(m *Model) { m.buf.MoveRight() },
		"ctrl+f":    func(m *Model) { m.buf.MoveRight() },
		"home":      func(m *Model) { m.buf.MoveHome() },
		"ctrl+a":    func(m *Model) { m.buf.MoveHome() },
		"end":       func(m *Model) { m.buf.MoveEnd() },
		"ctrl+e":    func(m *Model) { m.buf.MoveEnd() },
		"ctrl+u":    func(m *Model) { m.buf.KillToStart() },
		"ctrl+k":    func(m *Model) { m.buf.KillToEnd() },
		"esc":       func(m *Model) { m.buf.ResetSelection() },
	}
}
