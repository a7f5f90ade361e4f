// Package match filters and ranks catalog entries against search terms.
package match

import (
	"sort"
	"strings"

	"github.com/JoeyWangTW/model-lookup/internal/catalog"
	"github.com/JoeyWangTW/model-lookup/internal/translate"
)

// DefaultLimit caps how many search results are shown.
const DefaultLimit = 8

// Scoring weights. Identifier hits outrank display-name hits, newer
// models get a small recency boost, and free-tier variants sink below
// their paid twins.
const (
	idWeight       = 10
	nameWeight     = 5
	freePenalty    = 3
	recencyDivisor = 1e12
)

// Match pairs a catalog entry with its provider-native identifier.
type Match struct {
	Entry    catalog.Entry
	NativeID string
}

// Search returns entries matching every term, best first, truncated to
// limit (DefaultLimit when limit is not positive). Matching is
// case-insensitive over the identifier and the display name.
func Search(entries []catalog.Entry, terms []string, limit int) []Match {
	if len(terms) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	type scored struct {
		entry catalog.Entry
		score float64
	}
	var candidates []scored
	for _, e := range entries {
		s, ok := score(e, terms)
		if !ok {
			continue
		}
		candidates = append(candidates, scored{entry: e, score: s})
	}

	// Stable sort keeps catalog order on equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]Match, len(candidates))
	for i, c := range candidates {
		out[i] = Match{Entry: c.entry, NativeID: translate.NativeID(c.entry.ID)}
	}
	return out
}

// score rates one entry against the terms. ok is false unless every
// term appears in the identifier or the display name.
func score(e catalog.Entry, terms []string) (float64, bool) {
	id := strings.ToLower(e.ID)
	name := strings.ToLower(e.Name)

	var s float64
	for _, term := range terms {
		term = strings.ToLower(term)
		inID := strings.Contains(id, term)
		inName := strings.Contains(name, term)
		if !inID && !inName {
			return 0, false
		}
		if inID {
			s += idWeight
		}
		if inName {
			s += nameWeight
		}
	}
	s += float64(e.Created) / recencyDivisor
	if strings.Contains(id, ":free") {
		s -= freePenalty
	}
	return s, true
}

// ListProvider returns entries whose provider prefix equals the given
// name under case folding, in catalog order, uncapped.
func ListProvider(entries []catalog.Entry, provider string) []Match {
	var out []Match
	for _, e := range entries {
		if strings.EqualFold(e.Provider(), provider) {
			out = append(out, Match{Entry: e, NativeID: translate.NativeID(e.ID)})
		}
	}
	return out
}
