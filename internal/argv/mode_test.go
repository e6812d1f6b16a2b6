package argv

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
)

func newModeFlags(mode *Mode) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	ModeVarP(fs, mode, ModePrint, "print", "p", "")
	ModeVarP(fs, mode, ModePrettyPrint, "pretty-print", "", "")
	ModeVarP(fs, mode, ModeList, "list", "l", "")
	return fs
}

func TestModeVarP(t *testing.T) {
	tests := []struct {
		args []string
		want Mode
	}{
		{nil, ModeNone},
		{[]string{"--print"}, ModePrint},
		{[]string{"-p"}, ModePrint},
		{[]string{"--pretty-print"}, ModePrettyPrint},
		{[]string{"-l"}, ModeList},
		{[]string{"--list=true"}, ModeList},
		{[]string{"--list", "--list=false"}, ModeNone},
		{[]string{"--print", "--list=false"}, ModePrint},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			var mode Mode
			fs := newModeFlags(&mode)

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.args, err)
			}
			if mode != tt.want {
				t.Errorf("Parse(%q) mode = %v, want %v", tt.args, mode, tt.want)
			}
		})
	}
}

func TestModeVarP_invalidValue(t *testing.T) {
	var mode Mode
	fs := newModeFlags(&mode)

	if err := fs.Parse([]string{"--print=maybe"}); err == nil {
		t.Error("Parse() expected error for --print=maybe")
	}
}

func TestModeVarP_changedOnlyWhenGiven(t *testing.T) {
	var mode Mode
	fs := newModeFlags(&mode)

	if err := fs.Parse([]string{"-p"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !fs.Changed("print") {
		t.Error("print not marked changed")
	}
	if fs.Changed("list") {
		t.Error("list marked changed")
	}
	if got := fs.Lookup("list").DefValue; got != "false" {
		t.Errorf("list DefValue = %q, want false", got)
	}
}

func TestRender(t *testing.T) {
	args := []string{"mycmd", "a b"}

	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNone, ""},
		{ModeList, "[\"mycmd\", \"a b\"]\n"},
		{ModePrint, "mycmd 'a b'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, tt.mode, args); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNone, "none"},
		{ModeList, "list"},
		{ModePrint, "print"},
		{ModePrettyPrint, "pretty-print"},
		{Mode(9), "Mode(9)"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
