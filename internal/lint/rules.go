package lint

import "strings"

// Rule reports a problem with one simple command, given its literal
// arguments. An empty message means the command is fine.
type Rule func(args []string) string

// CommandRule flags any of the named commands. Names match
// case-insensitively so DEL and del are the same command.
func CommandRule(msg string, names ...string) Rule {
	flagged := make(map[string]struct{}, len(names))
	for _, n := range names {
		flagged[strings.ToLower(n)] = struct{}{}
	}
	return func(args []string) string {
		if len(args) == 0 {
			return ""
		}
		if _, ok := flagged[strings.ToLower(args[0])]; ok {
			return args[0] + ": " + msg
		}
		return ""
	}
}

// ArgumentsRule flags cmd when its positional arguments start with subArgs
// and every one of flags is present.
//
// For example, ArgumentsRule("recursive delete", "rm", nil, []string{"-rf"})
// flags "rm -rf build" but not "rm build".
func ArgumentsRule(msg, cmd string, subArgs, flags []string) Rule {
	return func(args []string) string {
		if len(args) == 0 || !strings.EqualFold(args[0], cmd) {
			return ""
		}
		pos, fl := splitArgsFlags(args[1:])
		if !prefixMatch(pos, subArgs) || !flagsPresent(fl, flags) {
			return ""
		}
		return args[0] + ": " + msg
	}
}

// splitArgsFlags separates positional arguments from flags. Both -x and the
// cmd.exe style /x count as flags.
func splitArgsFlags(args []string) (positional, flags []string) {
	for _, a := range args {
		if isFlag(a) {
			flags = append(flags, strings.ToLower(a))
		} else {
			positional = append(positional, a)
		}
	}
	return
}

func isFlag(a string) bool {
	if strings.HasPrefix(a, "-") {
		return true
	}
	// "/s" is a switch, "/tmp" is a path.
	return len(a) == 2 && a[0] == '/'
}

func prefixMatch(haystack, needle []string) bool {
	if len(haystack) < len(needle) {
		return false
	}
	for i, n := range needle {
		if !strings.EqualFold(haystack[i], n) {
			return false
		}
	}
	return true
}

func flagsPresent(actual, required []string) bool {
	have := make(map[string]struct{}, len(actual))
	for _, f := range actual {
		have[f] = struct{}{}
	}
	for _, r := range required {
		if _, ok := have[strings.ToLower(r)]; !ok {
			return false
		}
	}
	return true
}

// DefaultRules flags commands that destroy data or stop the machine.
func DefaultRules() []Rule {
	return []Rule{
		CommandRule("formats a disk", "format", "mkfs", "diskpart"),
		CommandRule("stops the machine", "shutdown", "reboot", "halt"),
		ArgumentsRule("recursive forced delete", "rm", nil, []string{"-rf"}),
		ArgumentsRule("recursive forced delete", "rm", nil, []string{"-fr"}),
		ArgumentsRule("recursive delete without prompt", "rmdir", nil, []string{"/s", "/q"}),
		ArgumentsRule("recursive delete without prompt", "rd", nil, []string{"/s", "/q"}),
		ArgumentsRule("deletes without prompt", "del", nil, []string{"/q"}),
	}
}
