package highlight

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Auto is the lexer name that picks a lexer from the user's shell.
const Auto = "auto"

// DetectLexer returns the Chroma lexer for a shell executable path, such as
// the value of $SHELL or %COMSPEC%.
func DetectLexer(shell string) string {
	// Shells by executable name, extension stripped.
	shellMap := map[string]string{
		"cmd":        "batch",
		"command":    "batch",
		"powershell": "powershell",
		"pwsh":       "powershell",
		"bash":       "bash",
		"sh":         "bash",
		"dash":       "bash",
		"ksh":        "bash",
		"zsh":        "zsh",
		"fish":       "fish",
		"tcsh":       "tcsh",
		"csh":        "tcsh",
		"nu":         "nu",
	}

	base := strings.ToLower(filepath.Base(strings.ReplaceAll(shell, `\`, "/")))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if lex, ok := shellMap[base]; ok {
		return lex
	}
	if runtime.GOOS == "windows" {
		return "batch"
	}
	return "bash" // Default fallback
}

// resolveLexer expands Auto using the environment.
func resolveLexer(language string) string {
	if !strings.EqualFold(language, Auto) {
		return language
	}
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = os.Getenv("COMSPEC")
	}
	return DetectLexer(shell)
}
