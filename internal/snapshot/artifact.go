package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

// Artifact is the published status document an external page renderer
// consumes. It mirrors the snapshot but carries a generation timestamp and a
// stable array layout instead of the flat diff-friendly object.
type Artifact struct {
	UpdatedAt time.Time       `json:"updatedAt"`
	Services  []ServiceStatus `json:"services"`
}

type ServiceStatus struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode,omitempty"`
}

// BuildArtifact renders a snapshot into the published document, preserving
// endpoint declaration order.
func BuildArtifact(snap *domain.Snapshot, now time.Time) Artifact {
	a := Artifact{
		UpdatedAt: now.UTC(),
		Services:  make([]ServiceStatus, 0, snap.Len()),
	}
	for _, name := range snap.Names() {
		e, _ := snap.Get(name)
		a.Services = append(a.Services, ServiceStatus{
			Name:       name,
			Status:     string(e.Classification),
			StatusCode: e.HTTPStatus,
		})
	}
	return a
}

// WriteArtifact atomically writes the document, same guarantees as the
// snapshot file.
func WriteArtifact(path string, a Artifact) error {
	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	return writeFileAtomic(path, b)
}
