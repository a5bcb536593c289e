package linestate

// ResetSelection collapses the selection onto the cursor and forgets every
// extend step.
func (b *Buffer) ResetSelection() {
	b.selEnd = len(b.before)
	b.spans = b.spans[:0]
}

// ExtendSelection grows the selection to the next coarser unit of the
// hierarchy. It reports false, and changes nothing, once the whole line is
// selected.
func (b *Buffer) ExtendSelection() bool {
	cur := b.Selection()
	next := b.hierarchy.Next(Classify(b.line()), cur)
	if next == cur {
		return false
	}
	b.spans = append(b.spans, cur)
	b.apply(next)
	return true
}

// RetractSelection restores the span that was current before the last
// extend. It reports false when there is nothing to retract.
func (b *Buffer) RetractSelection() bool {
	if len(b.spans) == 0 {
		return false
	}
	prev := b.spans[len(b.spans)-1]
	b.spans = b.spans[:len(b.spans)-1]
	b.apply(prev)
	return true
}

func (b *Buffer) apply(s Span) {
	b.split(s.Start)
	b.selEnd = min(s.End, b.Len())
}
