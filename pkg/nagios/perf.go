package nagios

import (
	"fmt"
	"strconv"
	"strings"
)

// formatValue renders a metric payload for performance data output.
// Floats use the shortest representation that round-trips; strings pass
// through; everything else goes through fmt.
func formatValue(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case string:
		return n
	default:
		return fmt.Sprintf("%v", v)
	}
}

// perfLabel applies the protocol's label quoting rules: '=' is replaced
// with '_' since it would split the token, embedded single quotes are
// doubled, and a label containing a space is wrapped in single quotes.
func perfLabel(name string) string {
	label := strings.ReplaceAll(name, "=", "_")
	label = strings.ReplaceAll(label, "'", "''")
	if strings.Contains(label, " ") {
		return "'" + label + "'"
	}
	return label
}

// perfString assembles a single performance data token. The
// warn/crit/min/max tail is positional: an absent field followed by a
// present one renders as an empty segment, while a trailing run of
// absent fields is dropped entirely.
func perfString(name, value string, unit Unit, warn, crit, min, max string) string {
	var b strings.Builder
	b.WriteString(perfLabel(name))
	b.WriteByte('=')
	b.WriteString(value)
	b.WriteString(string(unit))

	tail := [4]string{warn, crit, min, max}
	last := -1
	for i, f := range tail {
		if f != "" {
			last = i
		}
	}
	for i := 0; i <= last; i++ {
		b.WriteByte(';')
		b.WriteString(tail[i])
	}
	return b.String()
}
