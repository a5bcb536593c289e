package linestate

import (
	"strings"
	"testing"
)

// step is the expected state after one ExtendSelection call.
type step struct {
	before   string
	selected string
}

func runExtend(t *testing.T, b *Buffer, steps []step) {
	t.Helper()
	line := b.Line()
	for i, want := range steps {
		b.ExtendSelection()
		if got := b.Before(); got != want.before {
			t.Fatalf("step %d: before = %q, want %q", i, got, want.before)
		}
		if got := b.SelectedText(); got != want.selected {
			t.Fatalf("step %d: selected = %q, want %q", i, got, want.selected)
		}
		if got := b.SelectionEnd(); got != len([]rune(want.before))+len([]rune(want.selected)) {
			t.Fatalf("step %d: selection end = %d", i, got)
		}
		if b.Line() != line {
			t.Fatalf("step %d: line changed to %q", i, b.Line())
		}
	}
}

func TestExtendSelectionPath(t *testing.T) {
	b := New(`cd d:\Work\bui`, `ld && make`)
	runExtend(t, b, []step{
		{`cd d:\Work\`, `build`},
		{`cd `, `d:\Work\build`},
		{``, `cd d:\Work\build `},
		{``, `cd d:\Work\build && make`},
	})
	if b.ExtendSelection() {
		t.Error("extend past whole line reported a change")
	}
	if b.Depth() != 4 {
		t.Errorf("depth = %d, want 4", b.Depth())
	}
}

func TestExtendSelectionClause(t *testing.T) {
	b := New("cd test && mak", "e clean > NUL")
	runExtend(t, b, []step{
		{"cd test && ", "make"},
		{"cd test &&", " make clean "},
		{"", "cd test && make clean > NUL"},
	})
}

func TestShellHierarchyCommand(t *testing.T) {
	b := New("cd test && mak", "e clean > NUL")
	b.SetHierarchy(ShellHierarchy)
	runExtend(t, b, []step{
		{"cd test && ", "make"},
		{"cd test &&", " make clean "},
		{"cd test &&", " make clean > NUL"},
		{"", "cd test && make clean > NUL"},
	})
}

func TestShellHierarchyQuotes(t *testing.T) {
	b := New(`cd "c:\Program Files (x86)\Sysinter`, `nals Suite" && ls -l`)
	b.SetHierarchy(ShellHierarchy)
	runExtend(t, b, []step{
		{`cd "c:\Program Files (x86)\`, `Sysinternals`},
		{`cd "c:\Program Files (x86)\`, `Sysinternals Suite`},
		{`cd "`, `c:\Program Files (x86)\Sysinternals Suite`},
		{`cd `, `"c:\Program Files (x86)\Sysinternals Suite"`},
		{``, `cd "c:\Program Files (x86)\Sysinternals Suite" `},
		{``, `cd "c:\Program Files (x86)\Sysinternals Suite" && ls -l`},
	})
}

func TestBasicHierarchyQuotesAreOpaqueToClause(t *testing.T) {
	b := New(`echo "a && b`, `" | sort`)
	runExtend(t, b, []step{
		{`echo "a && `, `b`},
		{``, `echo "a && b" `},
		{``, `echo "a && b" | sort`},
	})
}

func TestExtendNextToOperator(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		want          []step
	}{
		{"before operator", "cd test ", "&& make", []step{
			{"", "cd test "},
			{"", "cd test && make"},
		}},
		{"after operator", "cd test &&", " make", []step{
			{"cd test &&", " make"},
			{"", "cd test && make"},
		}},
		{"inside operator", "make &", "& ls", []step{
			{"", "make && ls"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runExtend(t, New(tt.before, tt.after), tt.want)
		})
	}
}

func TestShellHierarchyOperatorToken(t *testing.T) {
	b := New("make &", "& ls")
	b.SetHierarchy(ShellHierarchy)
	runExtend(t, b, []step{
		{"make ", "&&"},
		{"", "make && ls"},
	})
}

func TestPathRunStopsAtDoubleSeparator(t *testing.T) {
	b := New(`copy a\\b`, `\c x`)
	runExtend(t, b, []step{
		{`copy a\\`, `b`},
		{`copy a\\`, `b\c`},
		{``, `copy a\\b\c x`},
	})
}

func TestRetractUndoesExtend(t *testing.T) {
	b := New(`cd d:\Work\bui`, `ld && make`)
	type state struct {
		before, after string
		sel          Span
	}
	snap := func() state { return state{b.Before(), b.After(), b.Selection()} }

	var history []state
	for {
		history = append(history, snap())
		if !b.ExtendSelection() {
			break
		}
	}
	for i := len(history) - 2; i >= 0; i-- {
		if !b.RetractSelection() {
			t.Fatalf("retract %d reported no change", i)
		}
		if got := snap(); got != history[i] {
			t.Fatalf("after retract got %+v, want %+v", got, history[i])
		}
	}
	if b.RetractSelection() {
		t.Error("retract on empty stack reported a change")
	}
	if b.Before() != `cd d:\Work\bui` || b.HasSelection() {
		t.Errorf("not back at start: %q sel=%v", b.Before(), b.Selection())
	}
}

func TestExtendProperties(t *testing.T) {
	lines := []string{
		"",
		" ",
		"a",
		`"`,
		`""`,
		"&&",
		`cd "unterminated && x`,
		`a\b\\c "d e" | f > g ; h || i`,
		"  leading and trailing  ",
		"x;y;z",
		"ünïcode wörds && ñ",
	}
	for _, line := range lines {
		runes := []rune(line)
		for cursor := 0; cursor <= len(runes); cursor++ {
			for _, h := range []Hierarchy{BasicHierarchy, ShellHierarchy} {
				b := New(string(runes[:cursor]), string(runes[cursor:]))
				b.SetHierarchy(h)
				prev := b.Selection()
				for n := 0; ; n++ {
					if n > len(h)+1 {
						t.Fatalf("%q@%d: did not converge", line, cursor)
					}
					changed := b.ExtendSelection()
					cur := b.Selection()
					if b.Line() != line {
						t.Fatalf("%q@%d: line changed to %q", line, cursor, b.Line())
					}
					if !cur.Contains(prev) {
						t.Fatalf("%q@%d: %v does not contain %v", line, cursor, cur, prev)
					}
					if !changed {
						if cur != (Span{0, len(runes)}) {
							t.Fatalf("%q@%d: stopped at %v", line, cursor, cur)
						}
						break
					}
					prev = cur
				}
			}
		}
	}
}

func TestResetSelection(t *testing.T) {
	b := New("ab", "cd ef")
	b.ExtendSelection()
	b.ExtendSelection()
	b.ResetSelection()
	if b.HasSelection() || b.Depth() != 0 {
		t.Fatalf("selection %v depth %d after reset", b.Selection(), b.Depth())
	}
	if b.SelectionEnd() != b.Cursor() {
		t.Errorf("selection end = %d, want %d", b.SelectionEnd(), b.Cursor())
	}
}

func TestClassify(t *testing.T) {
	l := Classify([]rune(`a "b;c" \&`))
	var sb strings.Builder
	for i := 0; i < l.Len(); i++ {
		sb.WriteString(l.Class(i).String()[:1])
	}
	if got, want := sb.String(), "wsqwowqsso"; got != want {
		t.Errorf("classes = %q, want %q", got, want)
	}
	if !l.InQuotes(4) || l.InQuotes(8) {
		t.Error("quote parity wrong")
	}
	if _, ok := l.OpToken(4); ok {
		t.Error("quoted operator returned as token")
	}
	if tok, ok := l.OpToken(9); !ok || tok != (Span{9, 10}) {
		t.Errorf("OpToken(9) = %v, %v", tok, ok)
	}
}

func TestHierarchyByName(t *testing.T) {
	for _, name := range []string{"", "basic", "Shell"} {
		if _, ok := HierarchyByName(name); !ok {
			t.Errorf("HierarchyByName(%q) not found", name)
		}
	}
	if _, ok := HierarchyByName("fancy"); ok {
		t.Error("unknown hierarchy accepted")
	}
}
