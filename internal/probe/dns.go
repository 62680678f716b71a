package probe

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"
)

var dnsTimeout = 3 * time.Second

// resolveClass classifies DNS resolution for the host of rawURL. Used only
// to annotate transport failures: a probe that cannot connect reads very
// differently when the name does not resolve at all.
//
// Classes: "resolves", "nxdomain", "servfail_or_timeout", "". Empty means
// the host is not worth resolving (IP literal, unparseable URL).
func resolveClass(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	host := u.Hostname()
	if net.ParseIP(host) != nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), dnsTimeout)
	defer cancel()
	r := &net.Resolver{} // OS resolver

	ips, err := r.LookupIP(ctx, "ip", host)
	if err == nil && len(ips) > 0 {
		return "resolves"
	}
	var de *net.DNSError
	if errors.As(err, &de) {
		if de.IsNotFound {
			return "nxdomain"
		}
		if de.IsTemporary || de.Timeout() {
			return "servfail_or_timeout"
		}
	}
	if err != nil && strings.Contains(err.Error(), "no such host") {
		return "nxdomain"
	}
	return "servfail_or_timeout"
}
