package nagios

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// CheckFunc gathers measurements and assembles a Resource. Returning an
// error aborts the check; the Runner turns the error into a protocol
// line with the configured error state.
type CheckFunc func() (*Resource, error)

// Runner executes a CheckFunc and handles the error path, so plugins do
// not need boilerplate around every fallible measurement. By default a
// failed check reports Critical:
//
//	nagios.NewRunner().RunAndExit(func() (*nagios.Resource, error) {
//		rtt, err := measure()
//		if err != nil {
//			return nil, err
//		}
//		return nagios.NewResource("ping",
//			nagios.NewThresholdMetric("rtt", rtt).WithThresholds(100, 500)), nil
//	})
type Runner struct {
	errState State
	out      io.Writer
	log      logrus.FieldLogger
}

// NewRunner creates a Runner reporting errors as Critical on stdout.
func NewRunner() *Runner {
	return &Runner{errState: StateCritical, out: os.Stdout}
}

// OnError sets the state reported when the CheckFunc fails.
func (r *Runner) OnError(s State) *Runner {
	r.errState = s
	return r
}

// WithLogger attaches a logger for diagnostics. The logger must not
// write to stdout: stdout carries only the protocol line.
func (r *Runner) WithLogger(log logrus.FieldLogger) *Runner {
	r.log = log
	return r
}

// WithOutput redirects the protocol line, mainly for tests.
func (r *Runner) WithOutput(w io.Writer) *Runner {
	r.out = w
	return r
}

// Run executes fn, prints the protocol line and returns the exit code
// the process should finish with.
func (r *Runner) Run(fn CheckFunc) int {
	res, err := fn()
	if err != nil {
		if r.log != nil {
			r.log.WithError(err).Debug("check failed")
		}
		fmt.Fprintf(r.out, "%s: %s\n", r.errState, err)
		return r.errState.ExitCode()
	}

	state, line := res.Report()
	if r.log != nil {
		r.log.WithField("state", state.String()).Debug("check complete")
	}
	fmt.Fprintln(r.out, line)
	return state.ExitCode()
}

// RunAndExit runs fn and exits the process with the resulting code.
func (r *Runner) RunAndExit(fn CheckFunc) {
	os.Exit(r.Run(fn))
}
