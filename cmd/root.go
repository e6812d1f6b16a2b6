package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.dot.industries/tomlanywhere/internal/argv"
	"go.dot.industries/tomlanywhere/internal/errors"
	childexec "go.dot.industries/tomlanywhere/internal/exec"
	"go.dot.industries/tomlanywhere/internal/invoke"
	"go.dot.industries/tomlanywhere/internal/splice"
	"go.dot.industries/tomlanywhere/internal/version"
)

const appName = "toml-anywhere"

// options holds the wrapper's own parsed flags.
type options struct {
	mode    argv.Mode
	dryRun  bool
	flag    string
	verbose bool
}

// streams are the standard streams of one invocation.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// Execute runs the wrapper on the process arguments and returns the exit
// status.
func Execute() int {
	return execute(context.Background(), os.Args[1:], streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func execute(ctx context.Context, args []string, std streams) int {
	initLogger(std.err, false)

	opts := &options{}
	rootCmd := newRootCmd(opts, std)

	part := argv.Split(args, argv.DefaultFlagOption)

	// The command goes after "--" so that cobra never reads it as an option.
	cobraArgs := slices.Clone(part.Internal)
	if part.HasCommand {
		cobraArgs = append(cobraArgs, "--", part.Command)
	}
	rootCmd.SetArgs(cobraArgs)

	started := false
	rootCmd.RunE = func(cmd *cobra.Command, positional []string) error {
		started = true
		log.Debug().
			Strs("internal", part.Internal).
			Str("command", part.Command).
			Strs("external", part.External).
			Msg("partitioned arguments")
		return run(cmd.Context(), opts, positional[0], part.External, std)
	}

	// Help lists usage and flags only for a runnable command, so RunE is set
	// first.
	if len(args) == 0 {
		_ = rootCmd.Help()
		return errors.ExitOK
	}

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return errors.ExitOK
	}

	if childexec.IsExitError(err) {
		return childexec.ExitCode(err)
	}

	if !started && errors.GetErrorCode(err) == errors.ErrUnknown {
		err = errors.Wrap(err, errors.ErrUsage, "invalid arguments")
	}

	log.Debug().Str("code", string(errors.GetErrorCode(err))).Msg("invocation failed")
	fmt.Fprintln(std.err, "Error:", err)
	if errors.IsErrorCode(err, errors.ErrUsage) {
		fmt.Fprintf(std.err, "Run '%s --help' for usage.\n", appName)
	}

	return errors.ExitCode(err)
}

func newRootCmd(opts *options, std streams) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName + " [options] command [args...]",
		Short: "Load command line arguments from TOML configuration for any program",
		Long: `toml-anywhere gives any command line program a --config flag.

Every "--config FILE" or "--config=FILE" among the command's arguments is
replaced by the contents of the TOML file, one "--key value" pair per entry.
Nested tables become dotted keys ("--db.host"), underscores in keys become
dashes, and non-string values are written as JSON text.

Use "-" as the command to only print the resulting arguments. Use "--"
before the command if the command itself starts with a dash.`,
		Version:       version.String(),
		Args:          requireCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			initLogger(std.err, opts.verbose)
		},
	}

	rootCmd.SetIn(std.in)
	rootCmd.SetOut(std.out)
	rootCmd.SetErr(std.err)

	flags := rootCmd.Flags()
	argv.ModeVarP(flags, &opts.mode, argv.ModePrint, "print", "p",
		"print the command line before running it")
	argv.ModeVarP(flags, &opts.mode, argv.ModePrettyPrint, "pretty-print", "",
		"pretty print the argument list before running it (alias --pprint)")
	argv.ModeVarP(flags, &opts.mode, argv.ModeList, "list", "l",
		"print the argument list before running it")
	rootCmd.MarkFlagsMutuallyExclusive("print", "pretty-print", "list")

	flags.BoolVarP(&opts.dryRun, "dryrun", "d", false,
		"show the command but do not run it (implied by command '-')")
	flags.StringVar(&opts.flag, "flag", splice.DefaultFlag,
		"command line flag replaced by the contents of its TOML file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	return rootCmd
}

// normalizeFlagName maps flag aliases to their canonical names.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "pprint" {
		name = "pretty-print"
	}
	return pflag.NormalizedName(name)
}

func requireCommand(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrUsage, "the following argument is required: command")
	}
	return nil
}

// run splices the configuration into the command's arguments, then shows
// and runs the result.
func run(ctx context.Context, opts *options, command string, external []string, std streams) error {
	if opts.flag == "" {
		return errors.New(errors.ErrUsage, "--flag: must not be empty")
	}

	spliced, err := splice.New(opts.flag, nil).Splice(external)
	if err != nil {
		return err
	}

	inv := &invoke.Invoker{
		Out:  std.out,
		Exec: childexec.Runner{Stdin: std.in, Stdout: std.out, Stderr: std.err},
	}

	return inv.Invoke(ctx, invoke.NewPlan(command, spliced, opts.mode, opts.dryRun))
}

func initLogger(w io.Writer, verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}).
		With().Timestamp().Logger().Level(level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
