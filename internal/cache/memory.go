package cache

import "os"

// MemStore is an in-memory Store, used by tests in place of FileStore.
type MemStore struct {
	snap *Snapshot
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load returns the stored snapshot, or os.ErrNotExist when none was saved.
func (s *MemStore) Load() (*Snapshot, error) {
	if s.snap == nil {
		return nil, os.ErrNotExist
	}
	return s.snap, nil
}

// Save replaces the stored snapshot.
func (s *MemStore) Save(snap *Snapshot) error {
	s.snap = snap
	return nil
}
