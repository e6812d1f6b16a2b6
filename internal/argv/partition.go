// Package argv splits the wrapper's argument list and renders argument
// vectors for display.
package argv

import "strings"

const (
	// Separator ends the wrapper options; the token after it is the command.
	Separator = "--"
	// DryRunCommand in command position means "print only, run nothing".
	DryRunCommand = "-"
	// DefaultFlagOption is the wrapper option that takes the name of the
	// configuration flag as its value.
	DefaultFlagOption = "--flag"
)

// Partition is the argument list split at the command boundary.
type Partition struct {
	Internal []string
	Command  string
	External []string
	// HasCommand is false when the arguments end before a command token.
	HasCommand bool
}

type tokenClass int

const (
	classCommand tokenClass = iota
	classOption
	classOptionWithValue
	classSeparator
	classSentinel
)

func classify(token, flagOption string) tokenClass {
	switch {
	case token == flagOption:
		return classOptionWithValue
	case token == Separator:
		return classSeparator
	case token == DryRunCommand:
		return classSentinel
	case strings.HasPrefix(token, "-"):
		return classOption
	default:
		return classCommand
	}
}

// Split finds the command in args. Everything before it belongs to the
// wrapper; everything after it belongs to the command and is never
// inspected for wrapper options. flagOption names the single wrapper option
// that consumes the following token as its value.
//
// An explicit separator is dropped from the result, and the token after it
// is taken as the command even if it begins with '-'.
func Split(args []string, flagOption string) Partition {
	i, end := 0, -1

scan:
	for i < len(args) {
		switch classify(args[i], flagOption) {
		case classOptionWithValue:
			i += 2
		case classOption:
			i++
		case classSeparator:
			end = i
			i++
			break scan
		case classSentinel, classCommand:
			break scan
		}
	}

	if i > len(args) {
		i = len(args)
	}
	if end < 0 {
		end = i
	}

	p := Partition{Internal: args[:end:end]}
	if i < len(args) {
		p.Command = args[i]
		p.External = args[i+1:]
		p.HasCommand = true
	}
	return p
}
