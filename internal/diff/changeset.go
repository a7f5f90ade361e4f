package diff

import (
	"fmt"
	"strings"
	"time"

	"github.com/JoeyWangTW/model-lookup/internal/catalog"
)

// Changeset represents the complete diff between a cached snapshot and a
// freshly fetched catalog.
type Changeset struct {
	Added     []catalog.Entry
	Removed   []catalog.Entry
	Updated   []EntryUpdate
	Unchanged int
}

// EntryUpdate represents a surviving entry with field changes.
type EntryUpdate struct {
	ID      string
	Changes []FieldChange
}

// FieldChange records one field moving from Old to New.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

// HasChanges reports whether the changeset has any modifications.
func (cs *Changeset) HasChanges() bool {
	return len(cs.Added) > 0 || len(cs.Removed) > 0 || len(cs.Updated) > 0
}

// TotalChanged returns the count of added + removed + updated entries.
func (cs *Changeset) TotalChanged() int {
	return len(cs.Added) + len(cs.Removed) + len(cs.Updated)
}

// Render formats the changeset for terminal output. since is the fetch
// time of the older snapshot.
func (cs *Changeset) Render(since time.Time) string {
	stamp := since.UTC().Format("2006-01-02 15:04 MST")
	if !cs.HasChanges() {
		return fmt.Sprintf("No catalog changes since %s (%d models).\n", stamp, cs.Unchanged)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Catalog changes since %s:\n", stamp)

	if len(cs.Added) > 0 {
		fmt.Fprintf(&b, "\nAdded (%d):\n", len(cs.Added))
		for _, e := range cs.Added {
			fmt.Fprintf(&b, "  + %s  (%s)\n", e.ID, e.Name)
		}
	}

	if len(cs.Removed) > 0 {
		fmt.Fprintf(&b, "\nRemoved (%d):\n", len(cs.Removed))
		for _, e := range cs.Removed {
			fmt.Fprintf(&b, "  - %s  (%s)\n", e.ID, e.Name)
		}
	}

	if len(cs.Updated) > 0 {
		fmt.Fprintf(&b, "\nUpdated (%d):\n", len(cs.Updated))
		for _, u := range cs.Updated {
			fmt.Fprintf(&b, "  ~ %s\n", u.ID)
			for _, c := range u.Changes {
				fmt.Fprintf(&b, "      %s: %s -> %s\n", c.Field, c.Old, c.New)
			}
		}
	}

	fmt.Fprintf(&b, "\nUnchanged: %d\n", cs.Unchanged)
	return b.String()
}
