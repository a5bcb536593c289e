package linestate

import "fmt"

// Span is a half-open [Start, End) range of rune offsets into the line.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int    { return s.End - s.Start }
func (s Span) Empty() bool { return s.End <= s.Start }

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// wider reports whether s strictly contains o.
func (s Span) wider(o Span) bool {
	return s.Contains(o) && s != o
}

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }
