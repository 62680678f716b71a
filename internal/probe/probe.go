package probe

import (
	"context"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

// Result is the raw outcome of a single probe.
//
// StatusCode is the HTTP status when the server answered; 0 for any
// transport-level failure (DNS, connect, TLS, timeout). Reason carries the
// status line or the transport error for logging.
type Result struct {
	StatusCode int
	LatencyMS  float64
	Reason     string
}

// Prober issues one probe for an endpoint spec. Implementations never return
// an error: every failure mode is encoded in the Result.
type Prober interface {
	Probe(ctx context.Context, spec domain.EndpointSpec) Result
}
