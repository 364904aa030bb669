package nagios

// SimpleMetric carries a value and, optionally, an explicitly supplied
// state. It performs no evaluation of its own: the warning and critical
// fields are display strings rendered verbatim into performance data,
// never compared against the value. Use ThresholdMetric when the state
// should be derived from the value.
//
// Construction cannot fail for any combination of arguments; absent
// optional fields simply omit the corresponding performance data
// segments.
type SimpleMetric struct {
	name  string
	state State
	value string
	unit  Unit
	warn  string
	crit  string
	min   string
	max   string
}

// NewSimpleMetric creates an informational metric for value. Without
// WithState the metric reports OK, meaning "no opinion": it never
// influences a resource's aggregate state.
func NewSimpleMetric(name string, value any) SimpleMetric {
	return SimpleMetric{name: name, value: formatValue(value)}
}

// WithState attaches an externally determined state.
func (m SimpleMetric) WithState(s State) SimpleMetric {
	m.state = s
	return m
}

// WithUnit sets the unit of measurement appended to the value.
func (m SimpleMetric) WithUnit(u Unit) SimpleMetric {
	m.unit = u
	return m
}

// WithDisplayThresholds sets the warning and critical segments of the
// performance data token. They are display-only and may use the full
// Nagios range syntax; pass "" to leave a segment empty.
func (m SimpleMetric) WithDisplayThresholds(warn, crit string) SimpleMetric {
	m.warn = warn
	m.crit = crit
	return m
}

// WithDisplayBounds sets the min and max segments of the performance
// data token.
func (m SimpleMetric) WithDisplayBounds(min, max string) SimpleMetric {
	m.min = min
	m.max = max
	return m
}

// Name returns the metric name.
func (m SimpleMetric) Name() string {
	return m.name
}

// State returns the explicitly supplied state, or StateOK when none was
// given.
func (m SimpleMetric) State() State {
	return m.state
}

// PerfString renders the performance data token for this metric.
func (m SimpleMetric) PerfString() string {
	return perfString(m.name, m.value, m.unit, m.warn, m.crit, m.min, m.max)
}
