package linestate

import "strings"

// Level widens a span by one kind of syntactic unit. A level that does not
// apply to the span returns it unchanged. Levels are pure: they only read
// the classified line.
type Level func(l *Line, s Span) Span

// Hierarchy is an ordered list of levels, tightest first. The next coarser
// span is the result of the first level that strictly contains the current
// one.
type Hierarchy []Level

// Next returns the span one level coarser than s, or s itself when no level
// can widen it.
func (h Hierarchy) Next(l *Line, s Span) Span {
	for _, level := range h {
		if next := level(l, s); next.wider(s) {
			return next
		}
	}
	return s
}

var (
	// BasicHierarchy grows word, path run, clause, line.
	BasicHierarchy = Hierarchy{Word, PathRun, Clause, WholeLine}

	// ShellHierarchy adds an operator token step and quote-aware steps
	// between the word and path levels, and a redirection-transparent command
	// step after the clause.
	ShellHierarchy = Hierarchy{Word, Operator, QuotedWords, QuotedContent, Quoted, PathRun, Clause, Command, WholeLine}
)

// HierarchyByName maps a configuration name to a hierarchy.
func HierarchyByName(name string) (Hierarchy, bool) {
	switch strings.ToLower(name) {
	case "", "basic":
		return BasicHierarchy, true
	case "shell":
		return ShellHierarchy, true
	}
	return nil, false
}

// Word extends s over the run of word characters touching either edge.
func Word(l *Line, s Span) Span {
	for s.Start > 0 && l.is(s.Start-1, ClassWord) {
		s.Start--
	}
	for s.End < l.Len() && l.is(s.End, ClassWord) {
		s.End++
	}
	return s
}

// Operator selects the operator token the span sits on.
func Operator(l *Line, s Span) Span {
	if s.Empty() {
		if tok, ok := l.OpToken(s.Start); ok {
			return tok
		}
		if tok, ok := l.OpToken(s.Start - 1); ok {
			return tok
		}
		return s
	}
	if tok, ok := l.OpToken(s.Start); ok && tok.Contains(s) {
		return tok
	}
	return s
}

// PathRun joins the word around s with neighbouring word runs separated by a
// single backslash.
func PathRun(l *Line, s Span) Span {
	s = Word(l, s)
	for l.is(s.Start-1, ClassSep) && l.is(s.Start-2, ClassWord) {
		s.Start--
		for l.is(s.Start-1, ClassWord) {
			s.Start--
		}
	}
	for l.is(s.End, ClassSep) && l.is(s.End+1, ClassWord) {
		s.End++
		for l.is(s.End, ClassWord) {
			s.End++
		}
	}
	return s
}

// Clause extends s to the nearest unquoted operator, or line edge, on each
// side. The operators themselves stay outside the span.
func Clause(l *Line, s Span) Span {
	return untilOp(l, s, func(int) bool { return true })
}

// Command is Clause with redirections treated as part of the command, so it
// only stops at &, | and ;.
func Command(l *Line, s Span) Span {
	return untilOp(l, s, func(i int) bool { return isCommandSep(l.Rune(i)) })
}

func untilOp(l *Line, s Span, stop func(i int) bool) Span {
	for s.Start > 0 && !(l.bareOp(s.Start-1) && stop(s.Start-1)) {
		s.Start--
	}
	for s.End < l.Len() && !(l.bareOp(s.End) && stop(s.End)) {
		s.End++
	}
	return s
}

// QuotedWords extends a span inside quotes over space separated words, up to
// the next backslash or quote.
func QuotedWords(l *Line, s Span) Span {
	if !l.insideQuotes(s) {
		return s
	}
	literal := func(i int) bool {
		if i < 0 || i >= l.Len() {
			return false
		}
		c := l.Class(i)
		return c == ClassWord || c == ClassSpace || c == ClassOp
	}
	for literal(s.Start - 1) {
		s.Start--
	}
	for literal(s.End) {
		s.End++
	}
	return s
}

// QuotedContent selects everything between the quotes enclosing s. An
// unmatched opening quote runs to the end of the line.
func QuotedContent(l *Line, s Span) Span {
	open, end, ok := enclosingQuotes(l, s)
	if !ok {
		return s
	}
	return Span{Start: open + 1, End: end}
}

// Quoted selects the quoted string enclosing s, quotes included.
func Quoted(l *Line, s Span) Span {
	open, end, ok := enclosingQuotes(l, s)
	if !ok {
		return s
	}
	return Span{Start: open, End: min(end+1, l.Len())}
}

func enclosingQuotes(l *Line, s Span) (open, end int, ok bool) {
	if !l.insideQuotes(s) {
		return 0, 0, false
	}
	open = s.Start - 1
	for open >= 0 && l.Class(open) != ClassQuote {
		open--
	}
	if open < 0 {
		return 0, 0, false
	}
	end = s.End
	for end < l.Len() && l.Class(end) != ClassQuote {
		end++
	}
	return open, end, true
}

// WholeLine selects the entire line.
func WholeLine(l *Line, _ Span) Span {
	return Span{Start: 0, End: l.Len()}
}
