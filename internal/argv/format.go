package argv

import (
	"strconv"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/davecgh/go-spew/spew"
)

var prettyConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// ShellString renders args as one shell-like command line. Control
// characters are shown in their backslash form (a newline prints as \n), so
// the result is meant for reading, not for pasting into a shell.
func ShellString(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = shellescape.Quote(escapeControl(a))
	}
	return strings.Join(quoted, " ")
}

// ListString renders args as a bracketed list of Go-quoted strings.
func ListString(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = strconv.Quote(a)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// PrettyString dumps args one element per line.
func PrettyString(args []string) string {
	if args == nil {
		args = []string{}
	}
	return strings.TrimSuffix(prettyConfig.Sdump(args), "\n")
}

// escapeControl replaces non-printable runes with Go escape sequences and
// leaves quotes alone.
func escapeControl(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"', '\'':
			b.WriteRune(r)
		default:
			q := strconv.QuoteRune(r)
			b.WriteString(q[1 : len(q)-1])
		}
	}
	return b.String()
}
