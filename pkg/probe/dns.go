// Package probe provides the measurement side of the example plugins:
// small one-shot probes that capture latencies for the nagios package
// to evaluate and render. Probes gather their value exactly once; all
// threshold logic lives with the caller.
package probe

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// DefaultDNSTimeout is the default DNS query timeout.
const DefaultDNSTimeout = 3 * time.Second

// DNS queries a single name against a specific server and measures the
// round-trip time. When Expect is set, the answer section must contain
// a matching record or the probe fails.
type DNS struct {
	// Server is the host:port of the DNS server to query.
	Server string

	// Name is the query name, with or without trailing dot.
	Name string

	// QType is the record type: dns.TypeA, dns.TypeAAAA or dns.TypePTR.
	QType uint16

	// Expect is the expected answer value. Empty skips validation.
	Expect string

	// Timeout bounds the query. Zero means DefaultDNSTimeout.
	Timeout time.Duration
}

// Run performs the query and returns its round-trip time.
func (p DNS) Run(ctx context.Context) (time.Duration, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultDNSTimeout
	}
	client := &dns.Client{Timeout: timeout}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(p.Name), p.QType)
	msg.RecursionDesired = true

	resp, rtt, err := client.ExchangeContext(ctx, msg, p.Server)
	if err != nil {
		return 0, fmt.Errorf("dns %s %s: %w", qtypeName(p.QType), p.Name, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return 0, fmt.Errorf("dns %s %s: rcode %s", qtypeName(p.QType), p.Name, dns.RcodeToString[resp.Rcode])
	}
	if p.Expect != "" {
		if err := matchAnswer(resp.Answer, p.QType, p.Expect); err != nil {
			return 0, fmt.Errorf("dns %s %s: %w", qtypeName(p.QType), p.Name, err)
		}
	}

	return rtt, nil
}

// matchAnswer checks that at least one RR in the answer section matches
// the expected value for the given query type.
func matchAnswer(rrs []dns.RR, qtype uint16, expect string) error {
	for _, rr := range rrs {
		switch qtype {
		case dns.TypeA:
			if a, ok := rr.(*dns.A); ok {
				if normalizeIP(a.A.String()) == normalizeIP(expect) {
					return nil
				}
			}
		case dns.TypeAAAA:
			if aaaa, ok := rr.(*dns.AAAA); ok {
				if normalizeIP(aaaa.AAAA.String()) == normalizeIP(expect) {
					return nil
				}
			}
		case dns.TypePTR:
			if ptr, ok := rr.(*dns.PTR); ok {
				if normalizeFQDN(ptr.Ptr) == normalizeFQDN(expect) {
					return nil
				}
			}
		}
	}
	return fmt.Errorf("expected %q not found in answer", expect)
}

// normalizeIP parses and re-serializes an IP address string for
// comparison, handling IPv4-in-IPv6 representations and leading zeros.
func normalizeIP(s string) string {
	ip := net.ParseIP(s)
	if ip == nil {
		return s
	}
	return ip.String()
}

// normalizeFQDN strips the trailing dot so that "example.com." and
// "example.com" compare equal.
func normalizeFQDN(s string) string {
	return strings.TrimSuffix(s, ".")
}

// qtypeName returns a human-readable record type name for error messages.
func qtypeName(qtype uint16) string {
	switch qtype {
	case dns.TypeA:
		return "A"
	case dns.TypeAAAA:
		return "AAAA"
	case dns.TypePTR:
		return "PTR"
	default:
		return fmt.Sprintf("TYPE%d", qtype)
	}
}

// ParseQType converts a record type string to a miekg/dns type
// constant. Supported values (case-insensitive): A, AAAA, PTR.
func ParseQType(s string) (uint16, error) {
	switch strings.ToUpper(s) {
	case "A":
		return dns.TypeA, nil
	case "AAAA":
		return dns.TypeAAAA, nil
	case "PTR":
		return dns.TypePTR, nil
	default:
		return 0, fmt.Errorf("unsupported query type %q (supported: A, AAAA, PTR)", s)
	}
}
