// Package complete produces path completions for the token at the cursor.
//
// A token may be quoted ("c:\Program Fi) and may use either backslash or
// slash separators. Replacements keep the separator the user typed, quote
// names containing spaces, and end with a separator for directories or a
// space for files, the trailing characters that the line buffer reconciles
// against text already after the cursor.
package complete

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Options configures candidate lookup.
type Options struct {
	Root             string // Directory relative tokens resolve against (defaults to cwd)
	CaseSensitive    bool   // Match name prefixes case-sensitively
	RespectGitignore bool   // Hide entries ignored by Root/.gitignore
	MaxCandidates    int    // Stop after this many candidates (0 = unlimited)
}

// Candidate is one directory entry matching the token.
type Candidate struct {
	Name        string // Entry name
	Dir         bool
	Replacement string // Full replacement for the token
}

// Result is the outcome of completing one token.
type Result struct {
	Token      string
	Candidates []Candidate

	// Prefix is the longest replacement that every candidate extends. It is
	// left open (no closing quote or trailing filler) so typing can continue.
	Prefix string
}

// Unique reports whether exactly one candidate matched.
func (r Result) Unique() bool { return len(r.Candidates) == 1 }

// Completer looks up candidates on the local filesystem.
type Completer struct {
	opts   Options
	ignore *Ignore
}

// New creates a completer rooted at opts.Root.
func New(opts Options) (*Completer, error) {
	if opts.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		opts.Root = wd
	}
	ig := &Ignore{}
	if opts.RespectGitignore {
		var err error
		ig, err = LoadIgnore(filepath.Join(opts.Root, ".gitignore"))
		if err != nil {
			// Non-fatal: nothing is hidden.
			log.Warn().Err(err).Str("root", opts.Root).Msg("complete: reading .gitignore")
			ig = &Ignore{}
		}
	}
	return &Completer{opts: opts, ignore: ig}, nil
}

// token is a completion token split into its parts.
type token struct {
	quoted bool
	dir    string // Directory part as typed, separator included
	base   string // Partial entry name
	sep    string
}

func parseToken(s string) token {
	t := token{sep: string(filepath.Separator)}
	if strings.ContainsRune(s, '"') {
		t.quoted = true
		s = strings.ReplaceAll(s, `"`, "")
	}
	if i := strings.LastIndexAny(s, `\/`); i >= 0 {
		t.dir, t.base, t.sep = s[:i+1], s[i+1:], s[i:i+1]
	} else {
		t.base = s
	}
	return t
}

// Complete lists the entries matching tok.
func (c *Completer) Complete(ctx context.Context, tok string) (Result, error) {
	t := parseToken(tok)
	res := Result{Token: tok}

	dir := c.resolve(t.dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", dir, err)
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		name := e.Name()
		if !c.hasPrefix(name, t.base) || name == ".git" {
			continue
		}
		isDir := c.isDir(dir, e)
		if c.hidden(filepath.Join(dir, name), isDir) {
			continue
		}
		res.Candidates = append(res.Candidates, Candidate{
			Name:        name,
			Dir:         isDir,
			Replacement: t.replacement(name, isDir),
		})
		if c.opts.MaxCandidates > 0 && len(res.Candidates) >= c.opts.MaxCandidates {
			break
		}
	}

	sort.Slice(res.Candidates, func(i, j int) bool {
		return res.Candidates[i].Name < res.Candidates[j].Name
	})
	res.Prefix = t.prefix(res.Candidates)
	log.Debug().Str("token", tok).Int("count", len(res.Candidates)).Msg("complete: candidates")
	return res, nil
}

// resolve maps the typed directory onto the filesystem.
func (c *Completer) resolve(dir string) string {
	if dir == "" {
		return c.opts.Root
	}
	p := filepath.FromSlash(strings.ReplaceAll(dir, `\`, "/"))
	if len(dir) >= 2 && dir[1] == ':' && filepath.Separator == '/' {
		// Drive-letter paths only mean something on Windows.
		p = filepath.FromSlash(strings.ReplaceAll(dir[2:], `\`, "/"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.opts.Root, p)
}

func (c *Completer) hasPrefix(name, base string) bool {
	if c.opts.CaseSensitive {
		return strings.HasPrefix(name, base)
	}
	return hasFoldPrefix(name, base)
}

// hasFoldPrefix reports whether name starts with base under Unicode simple
// case folding. Folded runes may differ in encoded width (K and the Kelvin
// sign), so the strings are walked rune by rune.
func hasFoldPrefix(name, base string) bool {
	for base != "" {
		if name == "" {
			return false
		}
		rn, wn := utf8.DecodeRuneInString(name)
		rb, wb := utf8.DecodeRuneInString(base)
		if !equalFoldRune(rn, rb) {
			return false
		}
		name, base = name[wn:], base[wb:]
	}
	return true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

func (c *Completer) isDir(dir string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && fi.IsDir()
}

func (c *Completer) hidden(abs string, isDir bool) bool {
	rel, err := filepath.Rel(c.opts.Root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	return c.ignore.Match(rel, isDir)
}

// replacement builds the full token text for one entry.
func (t token) replacement(name string, isDir bool) string {
	text := t.dir + name
	if t.quoted || strings.ContainsRune(text, ' ') {
		text = `"` + text + `"`
	}
	if isDir {
		return text + t.sep
	}
	return text + " "
}

// prefix returns the open replacement shared by all candidates.
func (t token) prefix(cands []Candidate) string {
	if len(cands) == 0 {
		return ""
	}
	common := cands[0].Name
	for _, c := range cands[1:] {
		common = common[:commonPrefixLen(common, c.Name)]
	}
	text := t.dir + common
	if t.quoted || strings.ContainsRune(text, ' ') {
		text = `"` + text
	}
	return text
}

// commonPrefixLen returns the byte length of the longest common prefix of a
// and b that ends on a rune boundary.
func commonPrefixLen(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) {
		ra, w := utf8.DecodeRuneInString(a[i:])
		rb, _ := utf8.DecodeRuneInString(b[i:])
		if ra != rb {
			break
		}
		i += w
	}
	return i
}
