package linestate

// TokenStart returns the offset where the token ending at cursor begins. A
// token is delimited by an unquoted space or operator. When the cursor is
// inside quotes the token starts at the opening quote, so a quoted path with
// spaces is completed as a whole.
func TokenStart(line []rune, cursor int) int {
	cursor = min(max(cursor, 0), len(line))
	l := Classify(line)
	i := cursor
	for i > 0 {
		c := l.Class(i - 1)
		if !l.InQuotes(i-1) && (c == ClassSpace || c == ClassOp) {
			break
		}
		i--
	}
	return i
}

// Token returns the token ending at the cursor.
func (b *Buffer) Token() string {
	start := TokenStart(b.line(), len(b.before))
	return string(b.before[start:])
}
