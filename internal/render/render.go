// Package render formats matched catalog entries for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/JoeyWangTW/model-lookup/internal/catalog"
	"github.com/JoeyWangTW/model-lookup/internal/match"
)

// unknown fills in for absent fields. Lines are always printed so the
// output shape stays stable across entries.
const unknown = "unknown"

// Results renders numbered search matches, best first.
func Results(terms []string, matches []match.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top matches for '%s':\n", strings.Join(terms, " "))
	for i, m := range matches {
		b.WriteString("\n")
		writeBlock(&b, i+1, m)
	}
	return b.String()
}

// ProviderList renders list-mode output: native IDs with display names,
// in catalog order.
func ProviderList(provider string, matches []match.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Models from %s (%d total):\n\n", provider, len(matches))
	for _, m := range matches {
		fmt.Fprintf(&b, "  %s  (%s)\n", m.NativeID, orUnknown(m.Entry.Name))
	}
	return b.String()
}

// NoResults is the informational message for an empty search.
func NoResults(terms []string) string {
	return fmt.Sprintf("No models found matching: %s\n", strings.Join(terms, " "))
}

// NoProviderResults is the informational message for an empty listing.
func NoProviderResults(provider string) string {
	return fmt.Sprintf("No models found for provider: %s\n", provider)
}

func writeBlock(b *strings.Builder, n int, m match.Match) {
	fmt.Fprintf(b, "[%d] Name:       %s\n", n, orUnknown(m.Entry.Name))
	fmt.Fprintf(b, "    Native ID:  %s\n", orUnknown(m.NativeID))
	fmt.Fprintf(b, "    OpenRouter: %s\n", orUnknown(m.Entry.ID))
	fmt.Fprintf(b, "    Context:    %s\n", contextWindow(m.Entry.ContextLength))
	fmt.Fprintf(b, "    Pricing:    %s\n", pricing(m.Entry.Pricing))
	fmt.Fprintf(b, "    Inputs:     %s\n", joined(m.Entry.Inputs()))
	fmt.Fprintf(b, "    Features:   %s\n", joined(m.Entry.Features()))
}

func contextWindow(n int) string {
	if n <= 0 {
		return unknown
	}
	return humanize.Comma(int64(n))
}

func pricing(p catalog.Pricing) string {
	if p.Prompt == "" && p.Completion == "" {
		return unknown
	}
	return fmt.Sprintf("%s in, %s out", rate(p.Prompt), rate(p.Completion))
}

func rate(r string) string {
	if r == "" {
		return unknown
	}
	return "$" + r + "/token"
}

func joined(vals []string) string {
	if len(vals) == 0 {
		return unknown
	}
	return strings.Join(vals, ", ")
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
