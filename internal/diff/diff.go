// Package diff compares two catalog versions entry by entry.
package diff

import (
	"sort"
	"strconv"
	"strings"

	"github.com/JoeyWangTW/model-lookup/internal/catalog"
)

// Compute compares an older catalog against a newer one, keyed by entry
// ID. Entries only in the newer catalog are Added, entries only in the
// older one are Removed, and surviving entries with differing fields are
// Updated.
func Compute(older, newer []catalog.Entry) *Changeset {
	cs := &Changeset{}

	oldByID := make(map[string]catalog.Entry, len(older))
	for _, e := range older {
		oldByID[e.ID] = e
	}

	newSet := make(map[string]bool, len(newer))
	for _, e := range newer {
		newSet[e.ID] = true
		prev, ok := oldByID[e.ID]
		if !ok {
			cs.Added = append(cs.Added, e)
			continue
		}
		changes := fieldChanges(prev, e)
		if len(changes) > 0 {
			cs.Updated = append(cs.Updated, EntryUpdate{ID: e.ID, Changes: changes})
		} else {
			cs.Unchanged++
		}
	}

	for _, e := range older {
		if !newSet[e.ID] {
			cs.Removed = append(cs.Removed, e)
		}
	}

	return cs
}

// fieldChanges compares a surviving entry field by field. Fields absent
// from the newer record are skipped: missing upstream data is not a
// change.
func fieldChanges(prev, next catalog.Entry) []FieldChange {
	var changes []FieldChange

	if next.Name != "" && prev.Name != next.Name {
		changes = append(changes, FieldChange{Field: "name", Old: orNone(prev.Name), New: next.Name})
	}
	if next.ContextLength != 0 && prev.ContextLength != next.ContextLength {
		changes = append(changes, FieldChange{
			Field: "context_length",
			Old:   strconv.Itoa(prev.ContextLength),
			New:   strconv.Itoa(next.ContextLength),
		})
	}
	if next.Pricing.Prompt != "" && prev.Pricing.Prompt != next.Pricing.Prompt {
		changes = append(changes, FieldChange{Field: "pricing.prompt", Old: orNone(prev.Pricing.Prompt), New: next.Pricing.Prompt})
	}
	if next.Pricing.Completion != "" && prev.Pricing.Completion != next.Pricing.Completion {
		changes = append(changes, FieldChange{Field: "pricing.completion", Old: orNone(prev.Pricing.Completion), New: next.Pricing.Completion})
	}
	if len(next.Inputs()) > 0 && !equalStringSets(prev.Inputs(), next.Inputs()) {
		changes = append(changes, FieldChange{Field: "modalities.input", Old: joinOrNone(prev.Inputs()), New: joinOrNone(next.Inputs())})
	}
	if len(next.SupportedParameters) > 0 && !equalStringSets(prev.SupportedParameters, next.SupportedParameters) {
		changes = append(changes, FieldChange{
			Field: "supported_parameters",
			Old:   joinOrNone(prev.SupportedParameters),
			New:   joinOrNone(next.SupportedParameters),
		})
	}

	return changes
}

// equalStringSets compares two string slices order-independently.
func equalStringSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := make([]string, len(a))
	copy(sa, a)
	sort.Strings(sa)
	sb := make([]string, len(b))
	copy(sb, b)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func joinOrNone(vals []string) string {
	if len(vals) == 0 {
		return "(none)"
	}
	return strings.Join(vals, ", ")
}
