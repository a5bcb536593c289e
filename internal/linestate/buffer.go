// Package linestate holds the editing state of a single command line: the
// text on either side of the insertion point, the far edge of the current
// selection, and the stack of spans visited by smart select.
//
// A Buffer is not safe for concurrent use. Each input line owns its own.
package linestate

// Buffer is the line split at the insertion point.
//
// While a selection is active, len(before) <= selEnd <= len(before)+len(after):
// the near edge of the selection is always the split, the far edge is selEnd.
// A zero-length selection means "no selection, anchored at the cursor".
type Buffer struct {
	before []rune
	after  []rune
	selEnd int
	spans  []Span

	hierarchy Hierarchy
}

// New creates a buffer holding before+after with the cursor between them.
func New(before, after string) *Buffer {
	b := &Buffer{hierarchy: BasicHierarchy}
	b.Set(before, after)
	return b
}

// Set replaces the line and resets the selection.
func (b *Buffer) Set(before, after string) {
	b.before = []rune(before)
	b.after = []rune(after)
	b.ResetSelection()
}

// Reset empties the line, as after a submit or cancel.
func (b *Buffer) Reset() { b.Set("", "") }

// SetHierarchy selects the smart select levels. A nil hierarchy restores the
// basic one.
func (b *Buffer) SetHierarchy(h Hierarchy) {
	if h == nil {
		h = BasicHierarchy
	}
	b.hierarchy = h
}

// Before returns the text left of the cursor.
func (b *Buffer) Before() string { return string(b.before) }

// After returns the text right of the cursor.
func (b *Buffer) After() string { return string(b.after) }

// Line returns the whole line.
func (b *Buffer) Line() string { return string(b.line()) }

// Cursor returns the insertion point as a rune offset.
func (b *Buffer) Cursor() int { return len(b.before) }

// Len returns the line length in runes.
func (b *Buffer) Len() int { return len(b.before) + len(b.after) }

// SelectionEnd returns the far edge of the selection.
func (b *Buffer) SelectionEnd() int { return b.selEnd }

// Selection returns the current [cursor, selectionEnd) span, clamped to the
// line.
func (b *Buffer) Selection() Span {
	l := len(b.before)
	return Span{Start: l, End: min(max(b.selEnd, l), b.Len())}
}

// HasSelection reports whether the selection is non-empty.
func (b *Buffer) HasSelection() bool { return !b.Selection().Empty() }

// SelectedText returns the text under the selection.
func (b *Buffer) SelectedText() string {
	s := b.Selection()
	return string(b.after[:s.Len()])
}

// Depth returns how many extend steps can be retracted.
func (b *Buffer) Depth() int { return len(b.spans) }

func (b *Buffer) line() []rune {
	out := make([]rune, 0, b.Len())
	out = append(out, b.before...)
	return append(out, b.after...)
}

// split moves the insertion point to offset n without changing the line.
func (b *Buffer) split(n int) {
	line := b.line()
	n = min(max(n, 0), len(line))
	b.before = line[:n:n]
	b.after = append([]rune(nil), line[n:]...)
}
