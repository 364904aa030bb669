package nagios

import "cmp"

// ThresholdMetric derives its state from the value and the configured
// warning and critical boundaries. The critical boundary is checked
// first, so a value breaching both reports Critical; with no boundaries
// the state is OK. Evaluation runs inside the builder steps and the
// result is stored, so State is a plain field read and repeated reads
// are always identical.
//
// By default a value breaches a boundary when it is greater than or
// equal to it (the usual "upper bound not to exceed" convention).
// LowerIsBad flips the comparison for floor-style checks such as free
// disk space or battery charge.
type ThresholdMetric[T cmp.Ordered] struct {
	name       string
	value      T
	warn       *T
	crit       *T
	min        *T
	max        *T
	unit       Unit
	lowerIsBad bool
	state      State
}

// NewThresholdMetric creates a metric for value. Until boundaries are
// attached the state is OK.
func NewThresholdMetric[T cmp.Ordered](name string, value T) ThresholdMetric[T] {
	return ThresholdMetric[T]{name: name, value: value, state: StateOK}
}

// WithThresholds sets both boundaries at once.
func (m ThresholdMetric[T]) WithThresholds(warn, crit T) ThresholdMetric[T] {
	m.warn = &warn
	m.crit = &crit
	return m.evaluated()
}

// WithWarning sets only the warning boundary.
func (m ThresholdMetric[T]) WithWarning(warn T) ThresholdMetric[T] {
	m.warn = &warn
	return m.evaluated()
}

// WithCritical sets only the critical boundary.
func (m ThresholdMetric[T]) WithCritical(crit T) ThresholdMetric[T] {
	m.crit = &crit
	return m.evaluated()
}

// LowerIsBad treats the boundaries as lower bounds: the metric breaches
// when the value is less than or equal to a boundary.
func (m ThresholdMetric[T]) LowerIsBad() ThresholdMetric[T] {
	m.lowerIsBad = true
	return m.evaluated()
}

// WithUnit sets the unit of measurement appended to the value.
func (m ThresholdMetric[T]) WithUnit(u Unit) ThresholdMetric[T] {
	m.unit = u
	return m
}

// WithBounds sets the display-only min and max segments of the
// performance data token. They do not participate in evaluation.
func (m ThresholdMetric[T]) WithBounds(min, max T) ThresholdMetric[T] {
	m.min = &min
	m.max = &max
	return m
}

func (m ThresholdMetric[T]) evaluated() ThresholdMetric[T] {
	switch {
	case m.crit != nil && m.breaches(*m.crit):
		m.state = StateCritical
	case m.warn != nil && m.breaches(*m.warn):
		m.state = StateWarning
	default:
		m.state = StateOK
	}
	return m
}

// breaches reports whether the value is at or past the boundary in the
// configured direction.
func (m ThresholdMetric[T]) breaches(bound T) bool {
	if m.lowerIsBad {
		return m.value <= bound
	}
	return m.value >= bound
}

// Name returns the metric name.
func (m ThresholdMetric[T]) Name() string {
	return m.name
}

// State returns the state derived from the value and boundaries. It is
// always one of OK, Warning or Critical.
func (m ThresholdMetric[T]) State() State {
	return m.state
}

// Value returns the measured value.
func (m ThresholdMetric[T]) Value() T {
	return m.value
}

// PerfString renders the performance data token for this metric.
func (m ThresholdMetric[T]) PerfString() string {
	return perfString(m.name, formatValue(m.value), m.unit,
		formatOptional(m.warn), formatOptional(m.crit),
		formatOptional(m.min), formatOptional(m.max))
}

func formatOptional[T cmp.Ordered](p *T) string {
	if p == nil {
		return ""
	}
	return formatValue(*p)
}
