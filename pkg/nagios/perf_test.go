package nagios

import "testing"

func TestPerfLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"test", "test"},
		{"test=a", "test_a"},
		{"te'st", "te''st"},
		{"te st", "'te st'"},
		{"te 'st", "'te ''st'"},
	}
	for _, tt := range tests {
		if got := perfLabel(tt.name); got != tt.want {
			t.Errorf("perfLabel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPerfString(t *testing.T) {
	tests := []struct {
		desc                 string
		name, value          string
		unit                 Unit
		warn, crit, min, max string
		want                 string
	}{
		{
			desc: "value only",
			name: "test", value: "12",
			want: "test=12",
		},
		{
			desc: "value with unit",
			name: "time", value: "12", unit: UnitMilliseconds,
			want: "time=12ms",
		},
		{
			desc: "warn and crit",
			name: "time", value: "12", unit: UnitMilliseconds, warn: "10", crit: "20",
			want: "time=12ms;10;20",
		},
		{
			desc: "crit only keeps empty warn segment",
			name: "time", value: "12", unit: UnitMilliseconds, crit: "20",
			want: "time=12ms;;20",
		},
		{
			desc: "min and max only keep empty warn and crit segments",
			name: "time", value: "12", min: "5", max: "10",
			want: "time=12;;;5;10",
		},
		{
			desc: "max only",
			name: "time", value: "12", max: "10",
			want: "time=12;;;;10",
		},
		{
			desc: "trailing absent fields dropped",
			name: "test", value: "12", warn: "14", min: "0",
			want: "test=12;14;;0",
		},
		{
			desc: "all fields",
			name: "cpu_usage", value: "34.2", unit: UnitPercent, warn: "80", crit: "90", min: "0", max: "100",
			want: "cpu_usage=34.2%;80;90;0;100",
		},
		{
			desc: "range syntax passes through",
			name: "dbsize", value: "117878784", unit: UnitBytes, warn: "~:100000000", crit: "~:200000000", min: "0",
			want: "dbsize=117878784B;~:100000000;~:200000000;0",
		},
		{
			desc: "quoted label",
			name: "response time", value: "3", unit: UnitSeconds,
			want: "'response time'=3s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := perfString(tt.name, tt.value, tt.unit, tt.warn, tt.crit, tt.min, tt.max)
			if got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{12, "12"},
		{int64(-3), "-3"},
		{12.5, "12.5"},
		{12.0, "12"},
		{float32(0.25), "0.25"},
		{true, "true"},
		{"free", "free"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.value); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
