package probe

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultHTTPTimeout is the default per-request HTTP timeout.
const DefaultHTTPTimeout = 10 * time.Second

// HTTP fetches a URL a fixed number of times and reports each request's
// latency. Samples are paced by a rate limiter so repeated probing does
// not hammer the target. Any HTTP status counts as reachable; only
// transport errors fail the probe.
type HTTP struct {
	// URL is the target to fetch.
	URL string

	// Samples is the number of requests to make. Zero or negative
	// means a single request.
	Samples int

	// Rate is the sampling pace in requests per second. Zero means
	// no pacing.
	Rate rate.Limit

	// Timeout bounds each request. Zero means DefaultHTTPTimeout.
	Timeout time.Duration

	// SkipVerify disables TLS certificate verification.
	SkipVerify bool
}

// Run performs the samples and returns one latency per request, in
// request order.
func (p HTTP) Run(ctx context.Context) ([]time.Duration, error) {
	samples := p.Samples
	if samples <= 0 {
		samples = 1
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: p.SkipVerify},
		},
	}

	var limiter *rate.Limiter
	if p.Rate > 0 {
		limiter = rate.NewLimiter(p.Rate, 1)
	}

	latencies := make([]time.Duration, 0, samples)
	for i := 0; i < samples; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("http: %w", err)
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
		if err != nil {
			return nil, fmt.Errorf("http: build request for %s: %w", p.URL, err)
		}

		start := time.Now()
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("http: request to %s failed: %w", p.URL, err)
		}
		resp.Body.Close()

		latencies = append(latencies, time.Since(start))
	}

	return latencies, nil
}

// Mean returns the arithmetic mean of the durations, or zero for an
// empty slice.
func Mean(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return total / time.Duration(len(ds))
}

// Max returns the largest duration, or zero for an empty slice.
func Max(ds []time.Duration) time.Duration {
	var max time.Duration
	for _, d := range ds {
		if d > max {
			max = d
		}
	}
	return max
}
