// Package invoke builds the final argument vector, displays it, and runs it.
package invoke

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"go.dot.industries/tomlanywhere/internal/argv"
)

// Executor runs a command vector to completion.
type Executor interface {
	Run(ctx context.Context, command []string) error
}

// Plan is what the wrapper is going to do with the final argument vector.
type Plan struct {
	Argv   []string
	Mode   argv.Mode
	DryRun bool
}

// NewPlan assembles the final vector from command and the spliced args.
// The dry-run command "-" is left out of the vector and forces a dry run. A
// dry run with no display mode prints the vector shell-style.
func NewPlan(command string, args []string, mode argv.Mode, dryRun bool) Plan {
	vector := make([]string, 0, len(args)+1)
	if command == argv.DryRunCommand {
		dryRun = true
	} else {
		vector = append(vector, command)
	}
	vector = append(vector, args...)

	if dryRun && mode == argv.ModeNone {
		mode = argv.ModePrint
	}

	return Plan{Argv: vector, Mode: mode, DryRun: dryRun}
}

// Invoker displays plans on Out and runs them with Exec.
type Invoker struct {
	Out  io.Writer
	Exec Executor
}

// Invoke displays the plan's vector in its mode and, unless the plan is a
// dry run, executes it and returns the executor's error.
func (inv *Invoker) Invoke(ctx context.Context, plan Plan) error {
	log.Debug().
		Strs("argv", plan.Argv).
		Str("mode", plan.Mode.String()).
		Bool("dryrun", plan.DryRun).
		Msg("final argument vector")

	if err := argv.Render(inv.Out, plan.Mode, plan.Argv); err != nil {
		return fmt.Errorf("writing argument vector: %w", err)
	}

	if plan.DryRun {
		return nil
	}

	return inv.Exec.Run(ctx, plan.Argv)
}
