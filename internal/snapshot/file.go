package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

var _ Store = (*FileStore)(nil)

// FileStore keeps the snapshot in a single flat JSON file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the previous generation. A missing file is a normal first run
// and yields an empty snapshot with no error; an unreadable or corrupt file
// also yields an empty snapshot, with the parse error returned for logging.
func (s *FileStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return domain.NewSnapshot(), fmt.Errorf("read snapshot %s: %w", s.Path, err)
	}
	snap, err := Decode(b)
	if err != nil {
		return domain.NewSnapshot(), fmt.Errorf("decode snapshot %s: %w", s.Path, err)
	}
	return snap, nil
}

// Save atomically replaces the snapshot file: the encoded bytes go to a temp
// file in the same directory, which is then renamed over the old generation.
// A failure at any point leaves the previous file untouched.
func (s *FileStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	b, err := Encode(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return writeFileAtomic(s.Path, b)
}

func writeFileAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		tmp = nil
		return fmt.Errorf("rename over %s: %w", path, err)
	}
	tmp = nil
	return nil
}
