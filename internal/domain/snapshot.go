package domain

// SnapshotEntry is one endpoint's recorded state.
type SnapshotEntry struct {
	Classification Classification
	HTTPStatus     int
}

// Snapshot maps endpoint names to their recorded state, preserving insertion
// order. Two generations exist per run: the previous one (loaded at start,
// read-only) and the current one (built during the run, persisted at the end).
type Snapshot struct {
	names   []string
	entries map[string]SnapshotEntry
}

func NewSnapshot() *Snapshot {
	return &Snapshot{entries: make(map[string]SnapshotEntry)}
}

// Set records the state for name. First write of a name appends it to the
// iteration order; later writes overwrite in place.
func (s *Snapshot) Set(name string, e SnapshotEntry) {
	if _, ok := s.entries[name]; !ok {
		s.names = append(s.names, name)
	}
	s.entries[name] = e
}

func (s *Snapshot) Get(name string) (SnapshotEntry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Names returns endpoint names in insertion order.
func (s *Snapshot) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Snapshot) Len() int {
	return len(s.names)
}
