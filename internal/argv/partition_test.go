package argv

import (
	"slices"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		flagOption   string
		wantInternal []string
		wantCommand  string
		wantExternal []string
		wantFound    bool
	}{
		{
			name:         "separator consumed",
			args:         []string{"--flag", "x.toml", "--", "mycmd", "--foo"},
			wantInternal: []string{"--flag", "x.toml"},
			wantCommand:  "mycmd",
			wantExternal: []string{"--foo"},
			wantFound:    true,
		},
		{
			name:        "sentinel alone",
			args:        []string{"-"},
			wantCommand: "-",
			wantFound:   true,
		},
		{
			name:         "sentinel after options",
			args:         []string{"-l", "-", "--config", "a.toml"},
			wantInternal: []string{"-l"},
			wantCommand:  "-",
			wantExternal: []string{"--config", "a.toml"},
			wantFound:    true,
		},
		{
			name:        "bare command",
			args:        []string{"mycmd"},
			wantCommand: "mycmd",
			wantFound:   true,
		},
		{
			name:         "options then command",
			args:         []string{"-p", "-d", "mycmd", "--config", "a.toml", "-p"},
			wantInternal: []string{"-p", "-d"},
			wantCommand:  "mycmd",
			wantExternal: []string{"--config", "a.toml", "-p"},
			wantFound:    true,
		},
		{
			name:         "flag option value looks like a flag",
			args:         []string{"--flag", "--settings", "mycmd", "--settings=a.toml"},
			wantInternal: []string{"--flag", "--settings"},
			wantCommand:  "mycmd",
			wantExternal: []string{"--settings=a.toml"},
			wantFound:    true,
		},
		{
			name:         "flag option value is not the command",
			args:         []string{"--flag", "settings", "mycmd"},
			wantInternal: []string{"--flag", "settings"},
			wantCommand:  "mycmd",
			wantFound:    true,
		},
		{
			name:         "inline flag option value",
			args:         []string{"--flag=--settings", "mycmd"},
			wantInternal: []string{"--flag=--settings"},
			wantCommand:  "mycmd",
			wantFound:    true,
		},
		{
			name:         "custom flag option",
			args:         []string{"--opt", "v", "mycmd"},
			flagOption:   "--opt",
			wantInternal: []string{"--opt", "v"},
			wantCommand:  "mycmd",
			wantFound:    true,
		},
		{
			name:         "command after separator may start with dash",
			args:         []string{"--", "-weird", "x"},
			wantCommand:  "-weird",
			wantExternal: []string{"x"},
			wantFound:    true,
		},
		{
			name:         "only options",
			args:         []string{"-p"},
			wantInternal: []string{"-p"},
		},
		{
			name:         "flag option missing value",
			args:         []string{"--flag"},
			wantInternal: []string{"--flag"},
		},
		{
			name:         "separator without command",
			args:         []string{"-p", "--"},
			wantInternal: []string{"-p"},
		},
		{
			name: "empty",
			args: nil,
		},
		{
			name:         "external args never scanned",
			args:         []string{"mycmd", "--flag", "x", "--", "-"},
			wantCommand:  "mycmd",
			wantExternal: []string{"--flag", "x", "--", "-"},
			wantFound:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagOption := tt.flagOption
			if flagOption == "" {
				flagOption = DefaultFlagOption
			}

			p := Split(tt.args, flagOption)

			if p.HasCommand != tt.wantFound {
				t.Errorf("HasCommand = %v, want %v", p.HasCommand, tt.wantFound)
			}
			if p.Command != tt.wantCommand {
				t.Errorf("Command = %q, want %q", p.Command, tt.wantCommand)
			}
			if !slices.Equal(p.Internal, tt.wantInternal) {
				t.Errorf("Internal = %q, want %q", p.Internal, tt.wantInternal)
			}
			if !slices.Equal(p.External, tt.wantExternal) {
				t.Errorf("External = %q, want %q", p.External, tt.wantExternal)
			}
		})
	}
}

func TestSplit_recoversArgsWithoutSeparator(t *testing.T) {
	args := []string{"-p", "--flag", "--cfg", "mycmd", "--cfg", "a.toml", "pos"}

	p := Split(args, DefaultFlagOption)

	joined := append(append(append([]string{}, p.Internal...), p.Command), p.External...)
	if !slices.Equal(joined, args) {
		t.Errorf("rejoined = %q, want %q", joined, args)
	}
}

func TestSplit_internalDoesNotAlias(t *testing.T) {
	args := []string{"-p", "mycmd", "x"}

	p := Split(args, DefaultFlagOption)
	p.Internal = append(p.Internal, "--extra")

	if args[1] != "mycmd" {
		t.Errorf("args[1] = %q, want mycmd", args[1])
	}
}
