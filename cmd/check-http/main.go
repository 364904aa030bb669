// check-http is an example check plugin: it fetches a URL a few times,
// paced by a rate limiter, and reports mean and worst response times
// against warning/critical thresholds on the mean.
//
// Set GENERATE_ICINGA_COMMAND=1 to print the matching Icinga2
// CheckCommand definition instead of running the check.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/kylerisse/sagt/pkg/icinga"
	"github.com/kylerisse/sagt/pkg/nagios"
	"github.com/kylerisse/sagt/pkg/probe"
)

func main() {
	var (
		url      string
		samples  int
		pace     float64
		warn     float64
		crit     float64
		timeout  time.Duration
		insecure bool
		verbose  bool
	)

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	cmd := &cobra.Command{
		Use:           "check-http",
		Short:         "Check HTTP response time over multiple samples",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&url, "url", "", "URL to fetch")
	flags.IntVar(&samples, "samples", 3, "number of requests to average over")
	flags.Float64Var(&pace, "rate", 2, "sampling pace in requests per second")
	flags.Float64Var(&warn, "warning", 0, "warning threshold on mean response time in milliseconds")
	flags.Float64Var(&crit, "critical", 0, "critical threshold on mean response time in milliseconds")
	flags.DurationVar(&timeout, "timeout", probe.DefaultHTTPTimeout, "per-request timeout")
	flags.BoolVar(&insecure, "insecure", false, "skip TLS certificate verification")
	flags.BoolVar(&verbose, "verbose", false, "log request details to stderr")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if fired, err := icinga.PrintIfEnv(os.Stdout, "check-http", cmd); fired {
			return err
		}
		if url == "" {
			return fmt.Errorf("--url is required")
		}
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		nagios.NewRunner().WithLogger(log).RunAndExit(func() (*nagios.Resource, error) {
			latencies, err := probe.HTTP{
				URL:        url,
				Samples:    samples,
				Rate:       rate.Limit(pace),
				Timeout:    timeout,
				SkipVerify: insecure,
			}.Run(cmd.Context())
			if err != nil {
				return nil, err
			}

			meanMS := float64(probe.Mean(latencies).Microseconds()) / 1000
			worstMS := float64(probe.Max(latencies).Microseconds()) / 1000
			log.WithFields(logrus.Fields{
				"samples": len(latencies),
				"mean_ms": meanMS,
			}).Debug("sampling complete")

			m := nagios.NewThresholdMetric("time", meanMS).WithUnit(nagios.UnitMilliseconds)
			if warn > 0 {
				m = m.WithWarning(warn)
			}
			if crit > 0 {
				m = m.WithCritical(crit)
			}

			res := nagios.NewResource("HTTP").
				WithSummary(fmt.Sprintf("%s mean %.1fms over %d samples", url, meanMS, len(latencies)))
			res.Push(m)
			res.Push(nagios.NewSimpleMetric("worst", worstMS).WithUnit(nagios.UnitMilliseconds))
			return res, nil
		})
		return nil
	}

	if err := cmd.Execute(); err != nil {
		fmt.Printf("%s: %s\n", nagios.StateUnknown, err)
		os.Exit(nagios.StateUnknown.ExitCode())
	}
}
