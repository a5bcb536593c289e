package linestate

// isFiller reports whether r is a character that completions commonly
// re-supply after the user already typed it: quote, backslash or space.
func isFiller(r rune) bool {
	return r == quoteRune || r == sepRune || r == ' '
}

// Complete replaces the text before the cursor with replacement.
//
// The caller must have narrowed the text before the cursor to exactly the
// token being completed; CompleteToken locates the token itself. When the
// replacement ends in filler characters that the text after the cursor
// already starts with, the longest such overlap is dropped from the text
// after the cursor so quotes and separators are not doubled. The selection
// is left as it is.
func (b *Buffer) Complete(replacement string) {
	repl := []rune(replacement)
	b.before = repl
	b.after = b.after[fillerOverlap(repl, b.after):]
}

// CompleteToken completes the token that ends at the cursor, keeping
// everything in front of it.
func (b *Buffer) CompleteToken(replacement string) {
	start := TokenStart(b.line(), len(b.before))
	prefix := append([]rune(nil), b.before[:start]...)
	b.Complete(replacement)
	b.before = append(prefix, b.before...)
}

// fillerOverlap returns the largest k such that the last k runes of repl are
// all filler and equal the first k runes of after.
func fillerOverlap(repl, after []rune) int {
	run := 0
	for run < len(repl) && isFiller(repl[len(repl)-1-run]) {
		run++
	}
	for k := min(run, len(after)); k > 0; k-- {
		if equalRunes(repl[len(repl)-k:], after[:k]) {
			return k
		}
	}
	return 0
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
