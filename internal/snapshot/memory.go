package snapshot

import (
	"context"
	"sync"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

var _ Store = (*Memory)(nil)

// Memory is an in-process Store. Used in tests and anywhere a run should not
// touch disk. SaveErr, when set, makes every Save fail with that error.
type Memory struct {
	mu      sync.RWMutex
	snap    *domain.Snapshot
	SaveErr error
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) (*domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.snap == nil {
		return domain.NewSnapshot(), nil
	}
	// copy so a caller cannot mutate the stored generation
	out := domain.NewSnapshot()
	for _, name := range m.snap.Names() {
		e, _ := m.snap.Get(name)
		out.Set(name, e)
	}
	return out, nil
}

func (m *Memory) Save(ctx context.Context, snap *domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := domain.NewSnapshot()
	for _, name := range snap.Names() {
		e, _ := snap.Get(name)
		stored.Set(name, e)
	}
	m.snap = stored
	return nil
}
