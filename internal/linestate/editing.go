package linestate

// ---------------------------------------------------------------------------
// Cursor editing. Every operation here ends with the selection reset.
// ---------------------------------------------------------------------------

// InsertText inserts text at the cursor, replacing the selection if there is
// one. Carriage returns and newlines are dropped since the buffer holds a
// single line.
func (b *Buffer) InsertText(text string) {
	b.DeleteSelection()
	ins := make([]rune, 0, len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' {
			continue
		}
		ins = append(ins, r)
	}
	b.before = append(b.before, ins...)
	b.ResetSelection()
}

// DeleteSelection removes the selected text. It reports whether anything was
// removed.
func (b *Buffer) DeleteSelection() bool {
	n := b.Selection().Len()
	if n == 0 {
		return false
	}
	b.after = b.after[n:]
	b.ResetSelection()
	return true
}

// DeleteBack removes the selection, or the rune before the cursor.
func (b *Buffer) DeleteBack() {
	if !b.DeleteSelection() && len(b.before) > 0 {
		b.before = b.before[:len(b.before)-1]
	}
	b.ResetSelection()
}

// DeleteForward removes the selection, or the rune after the cursor.
func (b *Buffer) DeleteForward() {
	if !b.DeleteSelection() && len(b.after) > 0 {
		b.after = b.after[1:]
	}
	b.ResetSelection()
}

// MoveLeft moves the cursor one rune left.
func (b *Buffer) MoveLeft() {
	b.split(len(b.before) - 1)
	b.ResetSelection()
}

// MoveRight moves the cursor one rune right.
func (b *Buffer) MoveRight() {
	b.split(len(b.before) + 1)
	b.ResetSelection()
}

// MoveHome moves the cursor to the start of the line.
func (b *Buffer) MoveHome() {
	b.split(0)
	b.ResetSelection()
}

// MoveEnd moves the cursor to the end of the line.
func (b *Buffer) MoveEnd() {
	b.split(b.Len())
	b.ResetSelection()
}

// KillToStart deletes everything before the cursor.
func (b *Buffer) KillToStart() {
	b.before = b.before[:0]
	b.ResetSelection()
}

// KillToEnd deletes everything after the cursor.
func (b *Buffer) KillToEnd() {
	b.after = b.after[:0]
	b.ResetSelection()
}
