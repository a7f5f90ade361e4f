package diff

import (
	"strings"
	"testing"
	"time"

	"github.com/JoeyWangTW/model-lookup/internal/catalog"
)

func TestComputeAddedRemoved(t *testing.T) {
	older := []catalog.Entry{
		{ID: "google/gemini-2.5-flash", Name: "Google: Gemini 2.5 Flash"},
		{ID: "anthropic/claude-sonnet-4.6", Name: "Anthropic: Claude Sonnet 4.6"},
	}
	newer := []catalog.Entry{
		{ID: "anthropic/claude-sonnet-4.6", Name: "Anthropic: Claude Sonnet 4.6"},
		{ID: "x-ai/grok-5", Name: "xAI: Grok 5"},
	}

	cs := Compute(older, newer)
	if len(cs.Added) != 1 || cs.Added[0].ID != "x-ai/grok-5" {
		t.Errorf("Added = %+v, want only grok-5", cs.Added)
	}
	if len(cs.Removed) != 1 || cs.Removed[0].ID != "google/gemini-2.5-flash" {
		t.Errorf("Removed = %+v, want only gemini", cs.Removed)
	}
	if cs.Unchanged != 1 {
		t.Errorf("Unchanged = %d, want 1", cs.Unchanged)
	}
	if !cs.HasChanges() {
		t.Error("HasChanges() = false, want true")
	}
	if cs.TotalChanged() != 2 {
		t.Errorf("TotalChanged() = %d, want 2", cs.TotalChanged())
	}
}

func TestComputeUpdatedFields(t *testing.T) {
	older := []catalog.Entry{{
		ID:            "google/gemini-2.5-flash",
		Name:          "Google: Gemini 2.5 Flash",
		ContextLength: 1048576,
		Pricing:       catalog.Pricing{Prompt: "0.0000003"},
	}}
	newer := []catalog.Entry{{
		ID:            "google/gemini-2.5-flash",
		Name:          "Google: Gemini 2.5 Flash",
		ContextLength: 2097152,
		Pricing:       catalog.Pricing{Prompt: "0.0000004"},
	}}

	cs := Compute(older, newer)
	if len(cs.Updated) != 1 {
		t.Fatalf("Updated = %+v, want one entry", cs.Updated)
	}
	u := cs.Updated[0]
	if u.ID != "google/gemini-2.5-flash" {
		t.Errorf("Updated[0].ID = %q", u.ID)
	}
	if len(u.Changes) != 2 {
		t.Fatalf("Changes = %+v, want context_length and pricing.prompt", u.Changes)
	}
	if u.Changes[0].Field != "context_length" || u.Changes[0].New != "2097152" {
		t.Errorf("Changes[0] = %+v", u.Changes[0])
	}
	if u.Changes[1].Field != "pricing.prompt" || u.Changes[1].Old != "0.0000003" {
		t.Errorf("Changes[1] = %+v", u.Changes[1])
	}
}

func TestComputeIgnoresMissingUpstreamFields(t *testing.T) {
	older := []catalog.Entry{{
		ID:            "openai/gpt-4o-mini",
		Name:          "OpenAI: GPT-4o Mini",
		ContextLength: 128000,
		Pricing:       catalog.Pricing{Prompt: "0.00000015", Completion: "0.0000006"},
	}}
	newer := []catalog.Entry{{
		ID:   "openai/gpt-4o-mini",
		Name: "OpenAI: GPT-4o Mini",
	}}

	cs := Compute(older, newer)
	if len(cs.Updated) != 0 {
		t.Errorf("Updated = %+v, want none when the newer record lacks the fields", cs.Updated)
	}
	if cs.Unchanged != 1 {
		t.Errorf("Unchanged = %d, want 1", cs.Unchanged)
	}
}

func TestComputeSetOrderDoesNotMatter(t *testing.T) {
	older := []catalog.Entry{{
		ID:                  "a/b",
		Architecture:        catalog.Architecture{InputModalities: []string{"text", "image"}},
		SupportedParameters: []string{"tools", "reasoning"},
	}}
	newer := []catalog.Entry{{
		ID:                  "a/b",
		Architecture:        catalog.Architecture{InputModalities: []string{"image", "text"}},
		SupportedParameters: []string{"reasoning", "tools"},
	}}

	cs := Compute(older, newer)
	if cs.HasChanges() {
		t.Errorf("HasChanges() = true for reordered sets, Updated = %+v", cs.Updated)
	}
}

func TestEqualStringSets(t *testing.T) {
	tests := []struct {
		a, b []string
		want bool
	}{
		{nil, nil, true},
		{[]string{"x"}, []string{"x"}, true},
		{[]string{"x", "y"}, []string{"y", "x"}, true},
		{[]string{"x"}, []string{"x", "y"}, false},
		{[]string{"x"}, []string{"y"}, false},
	}
	for _, tt := range tests {
		if got := equalStringSets(tt.a, tt.b); got != tt.want {
			t.Errorf("equalStringSets(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	older := []catalog.Entry{
		{ID: "google/gemini-2.5-flash", Name: "Google: Gemini 2.5 Flash", ContextLength: 1048576},
		{ID: "openai/gpt-3.5-turbo", Name: "OpenAI: GPT-3.5 Turbo"},
	}
	newer := []catalog.Entry{
		{ID: "google/gemini-2.5-flash", Name: "Google: Gemini 2.5 Flash", ContextLength: 2097152},
		{ID: "x-ai/grok-5", Name: "xAI: Grok 5"},
	}

	out := Compute(older, newer).Render(time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC))
	for _, want := range []string{
		"Catalog changes since 2026-08-25 09:00 UTC:",
		"+ x-ai/grok-5  (xAI: Grok 5)",
		"- openai/gpt-3.5-turbo  (OpenAI: GPT-3.5 Turbo)",
		"~ google/gemini-2.5-flash",
		"context_length: 1048576 -> 2097152",
		"Unchanged: 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderNoChanges(t *testing.T) {
	entries := []catalog.Entry{{ID: "a/b", Name: "B"}}
	out := Compute(entries, entries).Render(time.Now())
	if !strings.Contains(out, "No catalog changes since") {
		t.Errorf("Render() = %q, want a no-changes message", out)
	}
}
