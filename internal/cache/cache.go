// Package cache persists timestamped catalog snapshots to disk.
package cache

import (
	"os"
	"path/filepath"
	"time"

	"github.com/JoeyWangTW/model-lookup/internal/catalog"
)

// Snapshot is one full copy of the catalog plus the time it was fetched.
// Freshness is judged against the recorded FetchedAt, not file mtime.
type Snapshot struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Models    []catalog.Entry `json:"models"`
}

// Age returns how long ago the snapshot was fetched.
func (s *Snapshot) Age() time.Duration {
	return time.Since(s.FetchedAt)
}

// Fresh reports whether the snapshot is younger than ttl.
func (s *Snapshot) Fresh(ttl time.Duration) bool {
	return s.Age() <= ttl
}

// Store loads and saves catalog snapshots. Implementations replace the
// snapshot wholesale; there are no partial updates.
type Store interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

// DefaultPath returns the snapshot location under the user cache
// directory, or a local .cache directory when none is available.
func DefaultPath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = ".cache"
	}
	return filepath.Join(base, "model-lookup", "models.json")
}
