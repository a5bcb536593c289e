package linestate

import "unicode"

// Class is the boundary class of a single rune in the line.
type Class uint8

const (
	ClassWord Class = iota
	ClassSpace
	ClassQuote
	ClassSep
	ClassOp
)

func (c Class) String() string {
	switch c {
	case ClassSpace:
		return "space"
	case ClassQuote:
		return "quote"
	case ClassSep:
		return "sep"
	case ClassOp:
		return "op"
	}
	return "word"
}

const (
	quoteRune = '"'
	sepRune   = '\\'
)

// isOpRune reports whether r is a shell control/redirection character.
func isOpRune(r rune) bool {
	switch r {
	case '&', '|', '<', '>', ';':
		return true
	}
	return false
}

// isCommandSep reports whether r separates commands (as opposed to
// redirecting one).
func isCommandSep(r rune) bool {
	switch r {
	case '&', '|', ';':
		return true
	}
	return false
}

func classOf(r rune) Class {
	switch {
	case r == quoteRune:
		return ClassQuote
	case r == sepRune:
		return ClassSep
	case isOpRune(r):
		return ClassOp
	case unicode.IsSpace(r):
		return ClassSpace
	}
	return ClassWord
}

// Line is a classified snapshot of the full line. It is built fresh for every
// selection call since completion or external edits change the quoting.
type Line struct {
	runes   []rune
	classes []Class
	// quoted[i] is true when an odd number of quotes precede i.
	quoted []bool
}

// Classify scans line left to right, recording each rune's class and the
// quote parity in front of it.
func Classify(line []rune) *Line {
	l := &Line{
		runes:   line,
		classes: make([]Class, len(line)),
		quoted:  make([]bool, len(line)+1),
	}
	in := false
	for i, r := range line {
		l.quoted[i] = in
		c := classOf(r)
		l.classes[i] = c
		if c == ClassQuote {
			in = !in
		}
	}
	l.quoted[len(line)] = in
	return l
}

// Len returns the number of runes in the line.
func (l *Line) Len() int { return len(l.runes) }

// Class returns the class of the rune at i.
func (l *Line) Class(i int) Class { return l.classes[i] }

// Rune returns the rune at i.
func (l *Line) Rune(i int) rune { return l.runes[i] }

// InQuotes reports whether offset i lies after an unmatched opening quote.
func (l *Line) InQuotes(i int) bool { return l.quoted[i] }

// is reports whether i is in range and has class c.
func (l *Line) is(i int, c Class) bool {
	return i >= 0 && i < len(l.runes) && l.classes[i] == c
}

// bareOp reports whether i holds an operator character outside quotes.
func (l *Line) bareOp(i int) bool {
	return l.is(i, ClassOp) && !l.quoted[i]
}

// OpToken returns the operator token covering i: the maximal run of identical
// unquoted operator characters, so "&&" and ">>" are single tokens.
func (l *Line) OpToken(i int) (Span, bool) {
	if !l.bareOp(i) {
		return Span{}, false
	}
	r := l.runes[i]
	s := Span{Start: i, End: i + 1}
	for s.Start > 0 && l.bareOp(s.Start-1) && l.runes[s.Start-1] == r {
		s.Start--
	}
	for s.End < len(l.runes) && l.bareOp(s.End) && l.runes[s.End] == r {
		s.End++
	}
	return s, true
}

// hasQuote reports whether s contains a quote character.
func (l *Line) hasQuote(s Span) bool {
	for i := s.Start; i < s.End; i++ {
		if l.classes[i] == ClassQuote {
			return true
		}
	}
	return false
}

// insideQuotes reports whether the whole span sits between one pair of quotes.
func (l *Line) insideQuotes(s Span) bool {
	return l.quoted[s.Start] && !l.hasQuote(s)
}
