// Package nagios implements the output side of the Nagios/Icinga check
// plugin protocol: turning measured values with optional thresholds
// into a service state, and rendering the single status line plus
// performance data the monitoring host parses from stdout.
//
// A plugin builds one or more metrics (ThresholdMetric for values
// evaluated against warning/critical boundaries, SimpleMetric for
// informational or pre-classified values), collects them in a Resource,
// and prints the Resource's report:
//
//	res := nagios.NewResource("disk").WithSummary("82% used")
//	res.Push(nagios.NewThresholdMetric("usage", 82.0).
//		WithThresholds(90, 95).
//		WithUnit(nagios.UnitPercent))
//	res.PrintAndExit()
//
// All types are plain values with no I/O: metrics report a value that
// was captured earlier and never re-measure anything, so rendering the
// same Resource twice produces byte-identical output.
package nagios

// Metric is a single measured quantity contributing to a Resource.
// Implementations must resolve State from already-captured data without
// side effects; a metric that could not be measured must fail before it
// is constructed (see Runner), never when queried.
type Metric interface {
	// Name returns the metric name, non-empty.
	Name() string

	// State returns the severity classification of the measurement.
	State() State

	// PerfString returns the rendered performance data token for this
	// metric, in 'label'=value[unit][;warn[;crit[;min[;max]]]] form.
	PerfString() string
}

// Unit is the unit of measurement appended to a metric's value in
// performance data. The constants cover the units the protocol defines
// special handling for; any other string is passed through verbatim.
type Unit string

const (
	UnitNone         Unit = ""
	UnitSeconds      Unit = "s"
	UnitMilliseconds Unit = "ms"
	UnitMicroseconds Unit = "us"
	UnitPercent      Unit = "%"
	UnitBytes        Unit = "B"
	UnitKilobytes    Unit = "KB"
	UnitMegabytes    Unit = "MB"
	UnitTerabytes    Unit = "TB"
	UnitCounter      Unit = "c"
)
