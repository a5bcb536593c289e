// Package lint reports whether a command line parses as a shell command and
// warns about commands matched by a rule. The result is advisory; the line
// is never rejected.
package lint

import (
	"errors"
	"strings"
	"unicode/utf8"

	"mvdan.cc/sh/v3/syntax"
)

// Diagnostic describes the first problem on a line.
type Diagnostic struct {
	Offset     int // rune offset into the line
	Message    string
	Incomplete bool // more input would fix it, e.g. an open quote
	Warning    bool // parsed fine, but a rule matched
}

func (d Diagnostic) String() string {
	return d.Message
}

// Checker parses lines with a fixed shell variant and applies rules to each
// simple command.
type Checker struct {
	parser *syntax.Parser
	rules  []Rule
}

// New returns a checker for the bash variant.
func New(rules ...Rule) *Checker {
	return &Checker{
		parser: syntax.NewParser(syntax.Variant(syntax.LangBash)),
		rules:  rules,
	}
}

// Check returns nil when line parses cleanly and no rule matches.
func (c *Checker) Check(line string) *Diagnostic {
	if c == nil || strings.TrimSpace(line) == "" {
		return nil
	}
	f, err := c.parser.Parse(strings.NewReader(line), "")
	if err != nil {
		return parseDiagnostic(line, err)
	}
	if len(c.rules) == 0 {
		return nil
	}

	var diag *Diagnostic
	syntax.Walk(f, func(node syntax.Node) bool {
		if diag != nil {
			return false
		}
		call, ok := node.(*syntax.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		args := make([]string, 0, len(call.Args))
		for _, w := range call.Args {
			args = append(args, w.Lit())
		}
		for _, rule := range c.rules {
			if msg := rule(args); msg != "" {
				diag = &Diagnostic{
					Offset:  runeOffset(line, call.Args[0].Pos()),
					Message: msg,
					Warning: true,
				}
				return false
			}
		}
		return true
	})
	return diag
}

func parseDiagnostic(line string, err error) *Diagnostic {
	d := &Diagnostic{Message: err.Error(), Incomplete: syntax.IsIncomplete(err)}
	var perr syntax.ParseError
	if errors.As(err, &perr) {
		d.Message = perr.Text
		d.Offset = runeOffset(line, perr.Pos)
	}
	return d
}

func runeOffset(line string, pos syntax.Pos) int {
	off := min(int(pos.Offset()), len(line))
	return utf8.RuneCountInString(line[:off])
}
