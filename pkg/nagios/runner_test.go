package nagios

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRunner_Success(t *testing.T) {
	var buf bytes.Buffer
	code := NewRunner().WithOutput(&buf).Run(func() (*Resource, error) {
		return NewResource("ping",
			NewThresholdMetric("rtt", 12).WithThresholds(100, 500).WithUnit(UnitMilliseconds),
		), nil
	})

	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
	if got, want := buf.String(), "OK ping|rtt=12ms;100;500\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunner_ErrorDefaultsToCritical(t *testing.T) {
	var buf bytes.Buffer
	code := NewRunner().WithOutput(&buf).Run(func() (*Resource, error) {
		return nil, errors.New("connection refused")
	})

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if got, want := buf.String(), "CRITICAL: connection refused\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunner_OnError(t *testing.T) {
	var buf bytes.Buffer
	code := NewRunner().OnError(StateUnknown).WithOutput(&buf).Run(func() (*Resource, error) {
		return nil, errors.New("no data yet")
	})

	if code != 3 {
		t.Errorf("expected exit code 3, got %d", code)
	}
	if !strings.HasPrefix(buf.String(), "UNKNOWN: ") {
		t.Errorf("expected UNKNOWN prefix, got %q", buf.String())
	}
}

func TestRunner_WorstMetricSetsCode(t *testing.T) {
	var buf bytes.Buffer
	code := NewRunner().WithOutput(&buf).Run(func() (*Resource, error) {
		return NewResource("load",
			NewThresholdMetric("load1", 9.0).WithThresholds(4, 8),
			NewThresholdMetric("load5", 2.0).WithThresholds(4, 8),
		), nil
	})

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
}

// The logger must never receive the protocol line; it only carries
// diagnostics.
func TestRunner_LoggerDoesNotTouchOutput(t *testing.T) {
	var out bytes.Buffer
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)

	code := NewRunner().WithOutput(&out).WithLogger(log).Run(func() (*Resource, error) {
		return NewResource("test"), nil
	})

	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
	if got, want := out.String(), "OK test\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
