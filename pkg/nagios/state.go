package nagios

// State is the service state a check reports to the monitoring host.
// States are ordered by aggregation severity: OK < Warning < Critical <
// Unknown. Unknown sorts last so that an inconclusive measurement is
// never masked by healthier metrics when states are combined.
type State int

const (
	StateOK State = iota
	StateWarning
	StateCritical
	StateUnknown
)

// Worst returns the more severe of the two states. It is associative
// and commutative, so folding it over a sequence of metric states
// yields the same result regardless of order or grouping.
func Worst(a, b State) State {
	if b > a {
		return b
	}
	return a
}

// ExitCode returns the process exit code the plugin protocol mandates
// for this state: 0, 1, 2 or 3. States outside the defined range map
// to 3 (UNKNOWN).
func (s State) ExitCode() int {
	switch s {
	case StateOK:
		return 0
	case StateWarning:
		return 1
	case StateCritical:
		return 2
	default:
		return 3
	}
}

// String returns the uppercase protocol label for the state.
func (s State) String() string {
	switch s {
	case StateOK:
		return "OK"
	case StateWarning:
		return "WARNING"
	case StateCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}
