package domain

import "time"

// Classification is the health verdict for one endpoint in one run.
type Classification string

const (
	Operational Classification = "operational"
	Down        Classification = "down"
)

// EndpointSpec describes one endpoint to probe. Specs are static
// configuration: loaded once, immutable during a run.
type EndpointSpec struct {
	Name    string `yaml:"name" json:"name"`
	URL     string `yaml:"url" json:"url"`
	Method  string `yaml:"method" json:"method"`   // GET when empty
	Payload string `yaml:"payload" json:"payload"` // JSON body for POST/PUT/PATCH
}

// ProbeResult is the outcome of probing a single endpoint. Produced fresh
// each run and folded into the current snapshot; never persisted directly.
type ProbeResult struct {
	Endpoint       string         `json:"endpoint"`
	HTTPStatus     int            `json:"http_status"` // 0 = transport failure
	Classification Classification `json:"classification"`
	LatencyMS      float64        `json:"latency_ms"`
	Reason         string         `json:"reason,omitempty"`
	CheckedAt      time.Time      `json:"checked_at"`
}

// NotificationEvent is emitted when an endpoint's classification differs
// from the previous snapshot. Field names match the webhook wire format.
type NotificationEvent struct {
	Service    string         `json:"service_name"`
	Previous   Classification `json:"previous_status"`
	New        Classification `json:"new_status"`
	HTTPStatus int            `json:"http_status"`
	Timestamp  time.Time      `json:"timestamp"`
}
