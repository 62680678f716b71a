package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

func TestResolveClass_SkipsIPLiterals(t *testing.T) {
	if got := resolveClass("http://127.0.0.1:9/health"); got != "" {
		t.Fatalf("IP literal should not be resolved, got %q", got)
	}
	if got := resolveClass("http://[::1]:9/health"); got != "" {
		t.Fatalf("IPv6 literal should not be resolved, got %q", got)
	}
}

func TestResolveClass_SkipsHostlessURLs(t *testing.T) {
	if got := resolveClass("http:///just-a-path"); got != "" {
		t.Fatalf("hostless URL should yield empty class, got %q", got)
	}
}

func TestProbe_DiagnoseDNSLeavesIPFailuresAlone(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	s.Close() // connection refused, host is an IP literal

	p := newTestProber(time.Second)
	p.DiagnoseDNS = true
	out := p.Probe(context.Background(), domain.EndpointSpec{Name: "svc", URL: s.URL, Method: "GET"})

	if out.StatusCode != 0 {
		t.Fatalf("want status 0, got %d", out.StatusCode)
	}
	if strings.Contains(out.Reason, "dns=") {
		t.Fatalf("IP failure should not carry a dns class: %q", out.Reason)
	}
}
