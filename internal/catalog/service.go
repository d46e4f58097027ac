package catalog

import (
	"io/fs"
	"sync"
)

// Service owns the current catalog snapshot and swaps it atomically on
// reload. Readers always see a complete snapshot, never a half-loaded one.
type Service struct {
	mu    sync.RWMutex
	fsys  fs.FS
	files Files
	snap  *Snapshot
}

func NewService(fsys fs.FS, files Files) *Service {
	return &Service{fsys: fsys, files: files}
}

// Snapshot returns the current catalog, loading it on first use.
func (s *Service) Snapshot() *Snapshot {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil {
		return snap
	}
	return s.Reload()
}

// Reload re-reads the sheets and publishes a fresh snapshot.
func (s *Service) Reload() *Snapshot {
	snap := Load(s.fsys, s.files)
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return snap
}
