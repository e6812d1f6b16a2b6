package exec

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/rs/zerolog/log"

	"go.dot.industries/tomlanywhere/internal/errors"
)

// Runner starts child processes with the given standard streams. A nil
// stream is inherited from the wrapper process.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts command[0] with the remaining elements as its arguments and
// waits for it to exit. Signals received meanwhile are forwarded to the
// child. A failure to start is reported as an ErrLaunch error; a child that
// exits unsuccessfully yields its *exec.ExitError, from which ExitCode
// recovers the status.
func (r Runner) Run(ctx context.Context, command []string) error {
	if len(command) == 0 {
		return errors.New(errors.ErrLaunch, "command must not be empty")
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if r.Stdin != nil {
		cmd.Stdin = r.Stdin
	}
	if r.Stdout != nil {
		cmd.Stdout = r.Stdout
	}
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, errors.ErrLaunch, "starting command %q", command[0])
	}

	log.Debug().Int("pid", cmd.Process.Pid).Str("command", command[0]).Msg("child started")

	cleanup := ForwardSignals(ctx, cmd.Process)
	defer cleanup()

	err := cmd.Wait()
	log.Debug().Int("status", ExitCode(err)).Msg("child exited")
	return err
}

// ExitCode extracts the exit status from an error returned by Run.
// Returns 0 if err is nil. Returns the process exit code if err is an
// *exec.ExitError, or 128 plus the signal number when the child was killed
// by a signal. Returns 1 for all other error types.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
	}

	return 1
}

// IsExitError reports whether err is a child's unsuccessful exit rather than
// a failure of the wrapper itself.
func IsExitError(err error) bool {
	var exitErr *exec.ExitError
	return stderrors.As(err, &exitErr)
}
