package argv

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
)

// Mode selects how the final argument vector is displayed.
type Mode int

const (
	ModeNone Mode = iota
	ModeList
	ModePrint
	ModePrettyPrint
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeList:
		return "list"
	case ModePrint:
		return "print"
	case ModePrettyPrint:
		return "pretty-print"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Format renders args in the given mode. ModeNone renders nothing.
func Format(mode Mode, args []string) string {
	switch mode {
	case ModeList:
		return ListString(args)
	case ModePrint:
		return ShellString(args)
	case ModePrettyPrint:
		return PrettyString(args)
	}
	return ""
}

// Render writes args to w in the given mode, followed by a newline. Nothing
// is written for ModeNone.
func Render(w io.Writer, mode Mode, args []string) error {
	if mode == ModeNone {
		return nil
	}
	_, err := fmt.Fprintln(w, Format(mode, args))
	return err
}

// modeFlag is a boolean flag that selects one Mode in a shared variable.
type modeFlag struct {
	target *Mode
	mode   Mode
}

func (f *modeFlag) String() string {
	return strconv.FormatBool(f.target != nil && *f.target == f.mode)
}

func (f *modeFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	switch {
	case on:
		*f.target = f.mode
	case *f.target == f.mode:
		*f.target = ModeNone
	}
	return nil
}

func (f *modeFlag) Type() string {
	return "bool"
}

// ModeVarP defines a boolean flag on fs that sets target to mode when given.
// Several flags may share one target; which of them may be combined is left
// to the caller.
func ModeVarP(fs *pflag.FlagSet, target *Mode, mode Mode, name, shorthand, usage string) {
	flag := fs.VarPF(&modeFlag{target: target, mode: mode}, name, shorthand, usage)
	flag.NoOptDefVal = "true"
}
