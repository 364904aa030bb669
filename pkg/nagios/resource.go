package nagios

import (
	"fmt"
	"os"
	"strings"
)

// Resource is the unit of reporting for one check invocation: a named
// collection of metrics plus the overall state derived from them or set
// explicitly. Metrics render into performance data in insertion order.
type Resource struct {
	name    string
	summary string
	state   *State
	metrics []Metric
}

// NewResource creates a resource with the given metrics. The overall
// state is derived from the metrics unless WithState is called.
func NewResource(name string, metrics ...Metric) *Resource {
	return &Resource{name: name, metrics: metrics}
}

// WithSummary sets the human-readable text rendered after the resource
// name.
func (r *Resource) WithSummary(summary string) *Resource {
	r.summary = summary
	return r
}

// WithState pins the overall state, disabling derivation from metrics.
// Use this when overall health is determined by logic the metrics alone
// cannot express.
func (r *Resource) WithState(s State) *Resource {
	r.state = &s
	return r
}

// Push appends a metric. Insertion order is the rendering order of the
// performance data.
func (r *Resource) Push(m Metric) {
	r.metrics = append(r.metrics, m)
}

// Metrics returns the collected metrics in insertion order.
func (r *Resource) Metrics() []Metric {
	return r.metrics
}

// State returns the pinned state if one was set, otherwise the worst
// state across all metrics. A resource with no metrics is OK.
func (r *Resource) State() State {
	if r.state != nil {
		return *r.state
	}
	state := StateOK
	for _, m := range r.metrics {
		state = Worst(state, m.State())
	}
	return state
}

// ExitCode returns the process exit code for the overall state.
func (r *Resource) ExitCode() int {
	return r.State().ExitCode()
}

// String renders the protocol line:
//
//	<LABEL> <name>: <summary>|<perf1> <perf2> ...
//
// The ": summary" part is omitted when no summary is set, and the
// performance data part is omitted when the resource has no metrics.
func (r *Resource) String() string {
	var b strings.Builder
	b.WriteString(r.State().String())
	if r.name != "" {
		b.WriteByte(' ')
		b.WriteString(r.name)
	}
	if r.summary != "" {
		b.WriteString(": ")
		b.WriteString(r.summary)
	}
	for i, m := range r.metrics {
		if i == 0 {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(m.PerfString())
	}
	return b.String()
}

// Report returns the overall state and the rendered line together.
func (r *Resource) Report() (State, string) {
	return r.State(), r.String()
}

// PrintAndExit writes the protocol line to stdout and exits the process
// with the matching exit code. Intended as the last call of a plugin's
// main.
func (r *Resource) PrintAndExit() {
	fmt.Println(r.String())
	os.Exit(r.ExitCode())
}
