package lint

import (
	"strings"
	"testing"
)

func TestCheckClean(t *testing.T) {
	c := New()
	for _, line := range []string{
		"",
		"   ",
		`cd d:\Work\build && make clean > NUL`,
		`cd "c:\Program Files (x86)" && dir`,
		"ls | grep x; echo done",
	} {
		if d := c.Check(line); d != nil {
			t.Errorf("Check(%q) = %+v, want nil", line, d)
		}
	}
}

func TestCheckOpenQuote(t *testing.T) {
	c := New()
	d := c.Check(`cd "c:\Program Files`)
	if d == nil {
		t.Fatal("expected diagnostic")
	}
	if !d.Incomplete {
		t.Errorf("Incomplete = false for %q", d.Message)
	}
	if !strings.Contains(d.Message, "quote") {
		t.Errorf("message %q does not mention the quote", d.Message)
	}
	if d.Offset != 3 {
		t.Errorf("Offset = %d, want 3", d.Offset)
	}
}

func TestCheckDanglingOperator(t *testing.T) {
	d := New().Check("make &&")
	if d == nil {
		t.Fatal("expected diagnostic")
	}
	if d.String() != d.Message {
		t.Errorf("String() = %q", d.String())
	}
}

func TestNilChecker(t *testing.T) {
	var c *Checker
	if d := c.Check(`"`); d != nil {
		t.Errorf("nil checker returned %+v", d)
	}
}

func TestCheckRules(t *testing.T) {
	c := New(DefaultRules()...)
	tests := []struct {
		line   string
		offset int
		msg    string
	}{
		{"cd build && rm -rf out", 12, "rm: recursive forced delete"},
		{`rmdir /S /Q d:\Work\build`, 0, "rmdir: recursive delete without prompt"},
		{"make; FORMAT c:", 6, "FORMAT: formats a disk"},
		{"rm out", -1, ""},
		{"rmdir /s d:\\tmp", -1, ""},
		{"echo rm -rf", -1, ""},
	}
	for _, tt := range tests {
		d := c.Check(tt.line)
		if tt.offset < 0 {
			if d != nil {
				t.Errorf("Check(%q) = %+v, want nil", tt.line, d)
			}
			continue
		}
		if d == nil {
			t.Errorf("Check(%q) = nil, want %q", tt.line, tt.msg)
			continue
		}
		if !d.Warning || d.Offset != tt.offset || d.Message != tt.msg {
			t.Errorf("Check(%q) = %+v, want offset %d msg %q", tt.line, d, tt.offset, tt.msg)
		}
	}
}

func TestParseErrorWinsOverRules(t *testing.T) {
	d := New(DefaultRules()...).Check(`rm -rf "out`)
	if d == nil || d.Warning {
		t.Fatalf("got %+v, want parse error", d)
	}
}
