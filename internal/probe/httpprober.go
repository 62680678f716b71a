package probe

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Soulverse-Ecosystem/status-check/internal/classify"
	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

const emptyJSONBody = "{}"

// HTTPProber probes endpoints over HTTP with a bounded timeout.
//
// GET probes try HEAD first to avoid pulling response bodies for a liveness
// check, falling back to a full GET when the server rejects HEAD or the HEAD
// outcome would classify as down. Mutating methods send the configured
// payload (or an empty JSON object) as application/json; DELETE sends no
// body. Static headers are attached to every request.
type HTTPProber struct {
	Client  *http.Client
	Headers http.Header
	Policy  classify.Policy

	// DiagnoseDNS annotates transport failures with a DNS resolution class.
	// Off by default; resolution adds latency on the failure path.
	DiagnoseDNS bool
}

func NewHTTPProber(timeout time.Duration, headers http.Header, policy classify.Policy) *HTTPProber {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPProber{
		Client:  &http.Client{Timeout: timeout},
		Headers: headers,
		Policy:  policy,
	}
}

func (p *HTTPProber) Probe(ctx context.Context, spec domain.EndpointSpec) Result {
	method := strings.ToUpper(strings.TrimSpace(spec.Method))
	if method == "" {
		method = http.MethodGet
	}

	start := time.Now()
	var status int
	var reason string
	var err error

	switch method {
	case http.MethodGet:
		status, reason, err = p.do(ctx, http.MethodHead, spec.URL, "", false)
		if err != nil || status == http.StatusMethodNotAllowed ||
			p.Policy.Classify(status, http.MethodGet) == domain.Down {
			status, reason, err = p.do(ctx, http.MethodGet, spec.URL, "", false)
		}
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		body := spec.Payload
		if body == "" {
			body = emptyJSONBody
		}
		status, reason, err = p.do(ctx, method, spec.URL, body, true)
	case http.MethodDelete:
		status, reason, err = p.do(ctx, method, spec.URL, "", false)
	default:
		status, reason, err = p.do(ctx, method, spec.URL, "", false)
	}

	lat := time.Since(start).Seconds() * 1000
	if err != nil {
		reason = err.Error()
		if p.DiagnoseDNS {
			if class := resolveClass(spec.URL); class != "" {
				reason = reason + " dns=" + class
			}
		}
		return Result{StatusCode: 0, LatencyMS: lat, Reason: reason}
	}
	return Result{StatusCode: status, LatencyMS: lat, Reason: reason}
}

func (p *HTTPProber) do(ctx context.Context, method, url, body string, jsonBody bool) (int, string, error) {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	var req *http.Request
	var err error
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return 0, "", err
	}
	for k, vs := range p.Headers {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	if jsonBody {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	return resp.StatusCode, resp.Status, nil
}
