package exec

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// forwardedSignals are relayed from the wrapper to the running child.
var forwardedSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

// ForwardSignals relays SIGINT, SIGTERM, and SIGHUP received by the wrapper
// to process until the returned cleanup function is called. The wrapper
// itself does not die on these signals while the child runs; it exits with
// the child's status instead.
func ForwardSignals(ctx context.Context, process *os.Process) func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, forwardedSignals...)

	done := make(chan struct{})

	go forwardLoop(ctx, process, sigChan, done)

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}

// forwardLoop exits when done is closed or the context is cancelled.
func forwardLoop(ctx context.Context, process *os.Process, sigChan <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sig := <-sigChan:
			if err := process.Signal(sig); err != nil {
				log.Debug().Err(err).Str("signal", sig.String()).Msg("signal not forwarded")
				continue
			}
			log.Debug().Str("signal", sig.String()).Int("pid", process.Pid).Msg("signal forwarded")
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}
