// check-dns is an example check plugin: it resolves a name against a
// specific DNS server, optionally validates the answer, and reports the
// query round-trip time against warning/critical latency thresholds.
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

	"github.com/kylerisse/sagt/pkg/icinga"
	"github.com/kylerisse/sagt/pkg/nagios"
	"github.com/kylerisse/sagt/pkg/probe"
)

func main() {
	var (
		server  string
		name    string
		qtype   string
		expect  string
		warn    float64
		crit    float64
		timeout time.Duration
		verbose bool
	)

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	cmd := &cobra.Command{
		Use:           "check-dns",
		Short:         "Check DNS answer and latency against a specific server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&server, "server", "127.0.0.1:53", "DNS server to query (host:port)")
	flags.StringVar(&name, "name", "", "name to resolve")
	flags.StringVar(&qtype, "type", "A", "record type (A, AAAA, PTR)")
	flags.StringVar(&expect, "expect", "", "expected answer value")
	flags.Float64Var(&warn, "warning", 0, "warning latency threshold in milliseconds")
	flags.Float64Var(&crit, "critical", 0, "critical latency threshold in milliseconds")
	flags.DurationVar(&timeout, "timeout", probe.DefaultDNSTimeout, "query timeout")
	flags.BoolVar(&verbose, "verbose", false, "log query details to stderr")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if fired, err := icinga.PrintIfEnv(os.Stdout, "check-dns", cmd); fired {
			return err
		}
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		nagios.NewRunner().WithLogger(log).RunAndExit(func() (*nagios.Resource, error) {
			qt, err := probe.ParseQType(qtype)
			if err != nil {
				return nil, err
			}

			log.WithFields(logrus.Fields{
				"server": server,
				"name":   name,
				"type":   qtype,
			}).Debug("querying")

			rtt, err := probe.DNS{
				Server:  server,
				Name:    name,
				QType:   qt,
				Expect:  expect,
				Timeout: timeout,
			}.Run(cmd.Context())
			if err != nil {
				return nil, err
			}

			ms := float64(rtt.Microseconds()) / 1000
			m := nagios.NewThresholdMetric("time", ms).WithUnit(nagios.UnitMilliseconds)
			if warn > 0 {
				m = m.WithWarning(warn)
			}
			if crit > 0 {
				m = m.WithCritical(crit)
			}

			res := nagios.NewResource("DNS").
				WithSummary(fmt.Sprintf("%s resolved in %.1fms", name, ms))
			res.Push(m)
			return res, nil
		})
		return nil
	}

	if err := cmd.Execute(); err != nil {
		fmt.Printf("%s: %s\n", nagios.StateUnknown, err)
		os.Exit(nagios.StateUnknown.ExitCode())
	}
}
