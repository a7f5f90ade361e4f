// Package translate converts catalog model identifiers into the form
// expected by each provider's own API.
package translate

import (
	"regexp"
	"sort"
	"strings"
)

// Rule rewrites the model part of a catalog identifier (the text after
// the provider prefix) into the provider-native form.
type Rule func(model string) string

// anthropicVersionRe matches dotted version pairs like the "4.6" in
// "claude-sonnet-4.6"; Anthropic's native IDs use dashes there.
var anthropicVersionRe = regexp.MustCompile(`(\d+)\.(\d+)`)

// rules maps catalog namespace prefixes to rewrite rules. Adding a
// provider is one entry here; matching and rendering are untouched.
var rules = map[string]Rule{
	"google":     stripPrefix,
	"openai":     stripPrefix,
	"anthropic":  anthropicNative,
	"deepseek":   stripPrefix,
	"meta-llama": stripPrefix,
	"mistralai":  stripPrefix,
	"cohere":     stripPrefix,
	"qwen":       stripPrefix,
	"x-ai":       stripPrefix,
}

// stripPrefix keeps the model part as-is; most providers accept the
// unprefixed catalog name directly.
func stripPrefix(model string) string { return model }

// anthropicNative rewrites dotted versions to dashed ones
// ("claude-sonnet-4.6" -> "claude-sonnet-4-6") and drops variant
// suffixes such as ":free" or ":thinking".
func anthropicNative(model string) string {
	model = anthropicVersionRe.ReplaceAllString(model, "$1-$2")
	if i := strings.Index(model, ":"); i >= 0 {
		model = model[:i]
	}
	return model
}

// NativeID converts a catalog identifier into the provider-native form.
// It is total: input without a provider prefix passes through unchanged,
// so already-native IDs are fixed points.
func NativeID(catalogID string) string {
	i := strings.Index(catalogID, "/")
	if i < 0 {
		return catalogID
	}
	prefix, model := catalogID[:i], catalogID[i+1:]
	if model == "" {
		return catalogID
	}
	if rule, ok := rules[prefix]; ok {
		return rule(model)
	}
	return model
}

// Providers returns the catalog prefixes with registered rules, sorted.
func Providers() []string {
	out := make([]string, 0, len(rules))
	for p := range rules {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
