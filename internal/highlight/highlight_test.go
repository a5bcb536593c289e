package highlight

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestLinePreservesText(t *testing.T) {
	h := New("batch", "vulcan")
	for _, line := range []string{
		`cd d:\Work\build && make`,
		`cd "c:\Program Files (x86)" > NUL`,
		"ünïcode",
	} {
		got := h.Line(line)
		if got == line {
			t.Errorf("%q was not highlighted", line)
		}
		if plain := ansi.Strip(got); plain != line {
			t.Errorf("stripped %q, want %q", plain, line)
		}
	}
}

func TestLineUnknownLexer(t *testing.T) {
	h := New("no-such-lexer", "vulcan")
	if got := h.Line("echo hi"); got != "echo hi" {
		t.Errorf("got %q", got)
	}
	var nilH *Highlighter
	if got := nilH.Line("x"); got != "x" {
		t.Errorf("nil highlighter got %q", got)
	}
}

var hexRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestThemePalette(t *testing.T) {
	a, b := ThemePalette("vulcan"), ThemePalette("vulcan")
	if a != b {
		t.Fatalf("palette not deterministic: %+v vs %+v", a, b)
	}
	for name, c := range map[string]string{
		"Bg": a.Bg, "Fg": a.Fg, "Border": a.Border, "Dim": a.Dim,
		"SelBg": a.SelBg, "Accent": a.Accent, "Error": a.Error,
	} {
		if !hexRe.MatchString(c) {
			t.Errorf("%s = %q is not #rrggbb", name, c)
		}
	}
}

func TestLerpHex(t *testing.T) {
	tests := []struct {
		a, b string
		t    float64
		want string
	}{
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#000000", "#ffffff", 0.5, "#808080"},
		{"#102030", "#102030", 0.3, "#102030"},
	}
	for _, tt := range tests {
		if got := lerpHex(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("lerpHex(%s, %s, %v) = %s, want %s", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestHexToBgSeq(t *testing.T) {
	if got := hexToBgSeq("#0a0b0c"); got != "\x1b[48;2;10;11;12m" {
		t.Errorf("got %q", got)
	}
	if got := hexToBgSeq("bogus"); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestDetectLexer(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"/bin/bash", "bash"},
		{"/usr/bin/zsh", "zsh"},
		{"/usr/local/bin/fish", "fish"},
		{`C:\Windows\System32\cmd.exe`, "batch"},
		{`C:\Program Files\PowerShell\7\pwsh.exe`, "powershell"},
	}
	for _, tt := range tests {
		if got := DetectLexer(tt.shell); got != tt.want {
			t.Errorf("DetectLexer(%q) = %q, want %q", tt.shell, got, tt.want)
		}
	}
}

func TestAutoLexer(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	if got := resolveLexer("AUTO"); got != "zsh" {
		t.Errorf("resolveLexer(AUTO) = %q", got)
	}
	if got := resolveLexer("batch"); got != "batch" {
		t.Errorf("resolveLexer(batch) = %q", got)
	}
	if h := New(Auto, "vulcan"); h.lexer == nil {
		t.Error("auto lexer not resolved")
	}
}
