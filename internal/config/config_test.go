package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMergesDefaults(t *testing.T) {
	path := writeConfig(t, `
[selection]
hierarchy = "shell"

[ui]
lexer = "bash"

[keys]
extend = ["ctrl+up", "shift+up"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Selection.Hierarchy != "shell" {
		t.Errorf("hierarchy = %q", cfg.Selection.Hierarchy)
	}
	if cfg.UI.Lexer != "bash" || cfg.UI.SyntaxTheme != "vulcan" {
		t.Errorf("ui = %+v", cfg.UI)
	}
	if len(cfg.Keys.Extend) != 2 || cfg.Keys.Retract[0] != "shift+down" {
		t.Errorf("keys = %+v", cfg.Keys)
	}
	if !cfg.Completion.RespectGitignore || cfg.History.MaxEntries != 1000 {
		t.Errorf("defaults lost: %+v %+v", cfg.Completion, cfg.History)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "[ui\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	path := writeConfig(t, `
[selection]
hierarchy = "fancy"

[log]
level = "loud"

[completion]
max_candidates = -1

[keys]
submit = []
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"selection.hierarchy", "log.level", "completion.max_candidates", "keys.submit"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SMARTLINE_HIERARCHY", "shell")
	t.Setenv("SMARTLINE_LOG_LEVEL", "debug")
	t.Setenv("SMARTLINE_THEME", "monokai")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Selection.Hierarchy != "shell" || cfg.Log.Level != "debug" || cfg.UI.SyntaxTheme != "monokai" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadOrDefaultReadsFile(t *testing.T) {
	cfg, err := LoadOrDefault(writeConfig(t, "[ui]\nprompt = \"$ \"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Prompt != "$ " {
		t.Errorf("prompt = %q", cfg.UI.Prompt)
	}
}
