package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTP_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := HTTP{URL: server.URL, Samples: 3}
	latencies, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(latencies) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(latencies))
	}
	for i, d := range latencies {
		if d <= 0 {
			t.Errorf("sample %d: expected positive latency, got %v", i, d)
		}
	}
}

func TestHTTP_Run_DefaultSingleSample(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := HTTP{URL: server.URL}
	latencies, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(latencies) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(latencies))
	}
}

// Any HTTP status counts as reachable; only transport errors fail.
func TestHTTP_Run_ServerErrorStillReachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := HTTP{URL: server.URL, Samples: 2}
	latencies, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(latencies) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(latencies))
	}
}

func TestHTTP_Run_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	p := HTTP{URL: server.URL, Timeout: time.Second}
	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestHTTP_Run_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := HTTP{URL: server.URL, Samples: 2, Rate: 1}
	if _, err := p.Run(ctx); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		in   []time.Duration
		want time.Duration
	}{
		{nil, 0},
		{[]time.Duration{10 * time.Millisecond}, 10 * time.Millisecond},
		{[]time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}, 20 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := Mean(tt.in); got != tt.want {
			t.Errorf("Mean(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		in   []time.Duration
		want time.Duration
	}{
		{nil, 0},
		{[]time.Duration{10 * time.Millisecond, 30 * time.Millisecond, 20 * time.Millisecond}, 30 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := Max(tt.in); got != tt.want {
			t.Errorf("Max(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
