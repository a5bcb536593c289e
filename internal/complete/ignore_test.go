package complete

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		isDir   bool
		want    bool
	}{
		{"*.log", "test.log", false, true},
		{"*.log", "test.txt", false, false},
		{"*.log", `logs\test.log`, false, true},

		{"node_modules/", "node_modules", true, true},
		{"node_modules/", "node_modules/package.json", false, true},
		{"node_modules/", "src/node_modules", true, true},

		{"build/*", "build/output.txt", false, true},
		{"build/*", "build", true, false},

		{"**/temp", "temp", false, true},
		{"**/temp", "src/lib/temp", false, true},

		{"/root.txt", "root.txt", false, true},
		{"/root.txt", "src/root.txt", false, false},

		{"file[12].txt", "file1.txt", false, true},
		{"file[12].txt", "file3.txt", false, false},
		{"a?c", "abc", false, true},
		{"# comment", "# comment", false, false},
	}
	for _, tt := range tests {
		ig := &Ignore{}
		ig.Add(tt.pattern)
		if got := ig.Match(tt.path, tt.isDir); got != tt.want {
			t.Errorf("pattern %q, path %q (isDir=%v): got %v, want %v",
				tt.pattern, tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestIgnoreNegation(t *testing.T) {
	ig := &Ignore{}
	ig.Add("*.log")
	ig.Add("!important.log")

	if !ig.Match("test.log", false) {
		t.Error("test.log should be ignored")
	}
	if ig.Match("important.log", false) {
		t.Error("important.log should be re-included")
	}
}

func TestLoadIgnore(t *testing.T) {
	if ig, err := LoadIgnore(filepath.Join(t.TempDir(), "missing")); err != nil || ig.Match("x", false) {
		t.Fatalf("missing file: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".gitignore")
	if err := os.WriteFile(path, []byte("# build output\n\ndist/\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ig, err := LoadIgnore(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ig.Match("dist", true) || ig.Match("src", true) {
		t.Error("dist/ rule not applied")
	}

	var nilIgnore *Ignore
	if nilIgnore.Match("anything", false) {
		t.Error("nil Ignore matched")
	}
}
