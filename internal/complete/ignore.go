package complete

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path"
	"regexp"
	"strings"
)

// Ignore decides whether a path relative to the completion root is hidden by
// the root's .gitignore. Later rules override earlier ones.
type Ignore struct {
	rules []ignoreRule
}

type ignoreRule struct {
	re      *regexp.Regexp
	negate  bool
	dirOnly bool
	rooted  bool
}

// LoadIgnore reads a .gitignore file. A missing file yields an empty Ignore.
func LoadIgnore(file string) (*Ignore, error) {
	ig := &Ignore{}
	if file == "" {
		return ig, nil
	}
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		return ig, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		ig.Add(sc.Text())
	}
	return ig, sc.Err()
}

// Add appends one gitignore line. Blank lines, comments and patterns that do
// not compile are skipped.
func (ig *Ignore) Add(line string) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return
	}
	var r ignoreRule
	if line[0] == '!' {
		r.negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		r.rooted = true
		line = line[1:]
	}
	re, err := regexp.Compile(globRegexp(line, r.rooted))
	if err != nil {
		return
	}
	r.re = re
	ig.rules = append(ig.rules, r)
}

// Match reports whether rel (slash or backslash separated) is ignored.
func (ig *Ignore) Match(rel string, isDir bool) bool {
	if ig == nil {
		return false
	}
	rel = strings.ReplaceAll(rel, `\`, "/")
	ignored := false
	for _, r := range ig.rules {
		if r.matches(rel, isDir) {
			ignored = !r.negate
		}
	}
	return ignored
}

func (r ignoreRule) matches(rel string, isDir bool) bool {
	if r.dirOnly {
		if isDir {
			return r.re.MatchString(rel)
		}
		return r.re.MatchString(path.Dir(rel))
	}
	if r.rooted {
		return r.re.MatchString(rel)
	}
	return r.re.MatchString(rel) || r.re.MatchString(path.Base(rel))
}

// globRegexp translates a gitignore glob into an anchored regular
// expression. Unrooted globs may match at any directory depth, and every
// glob also matches everything below a matching directory.
func globRegexp(glob string, rooted bool) string {
	var b strings.Builder
	if rooted {
		b.WriteString("^")
	} else {
		b.WriteString("(^|/)")
	}
	for i := 0; i < len(glob); i++ {
		c := glob[i]
		switch {
		case strings.HasPrefix(glob[i:], "**/"):
			b.WriteString("(.*/)?")
			i += 2
		case strings.HasPrefix(glob[i:], "**"):
			b.WriteString(".*")
			i++
		case c == '*':
			b.WriteString("[^/]*")
		case c == '?':
			b.WriteString("[^/]")
		case c == '[':
			if j := strings.IndexByte(glob[i:], ']'); j > 0 {
				b.WriteString(glob[i : i+j+1])
				i += j
			} else {
				b.WriteString(`\[`)
			}
		case c == '\\' && i+1 < len(glob):
			i++
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}
	if rooted {
		b.WriteString("$")
	} else {
		b.WriteString("(/.*)?$")
	}
	return b.String()
}
