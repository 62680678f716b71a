package snapshot

import (
	"context"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

// Store persists one generation of endpoint classifications.
//
// Load returning an error is diagnostic only: callers treat any load failure
// as "no history" and continue with an empty snapshot. Save failures are
// fatal to a run, since a lost snapshot breaks the next run's diff baseline.
type Store interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}
