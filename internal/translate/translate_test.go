package translate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNativeID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		// anthropic: dotted versions become dashed, variant suffixes drop
		{"anthropic/claude-sonnet-4.6", "claude-sonnet-4-6"},
		{"anthropic/claude-3.5-sonnet", "claude-3-5-sonnet"},
		{"anthropic/claude-3.5-haiku:beta", "claude-3-5-haiku"},
		{"anthropic/claude-opus-4.1:thinking", "claude-opus-4-1"},
		{"anthropic/claude-2", "claude-2"},

		// google keeps dotted versions; only the prefix is stripped
		{"google/gemini-2.5-flash", "gemini-2.5-flash"},
		{"google/gemini-2.0-flash-001", "gemini-2.0-flash-001"},
		{"google/gemma-3-27b-it:free", "gemma-3-27b-it:free"},

		{"openai/gpt-4o-mini", "gpt-4o-mini"},
		{"openai/o3-mini-high", "o3-mini-high"},
		{"deepseek/deepseek-chat-v3.1", "deepseek-chat-v3.1"},
		{"meta-llama/llama-3.3-70b-instruct", "llama-3.3-70b-instruct"},
		{"mistralai/mistral-large-2411", "mistral-large-2411"},
		{"cohere/command-r-plus", "command-r-plus"},
		{"qwen/qwen-2.5-72b-instruct", "qwen-2.5-72b-instruct"},
		{"x-ai/grok-4", "grok-4"},

		// unlisted prefixes fall back to a plain strip
		{"moonshotai/kimi-k2", "kimi-k2"},
		{"amazon/nova-pro-v1", "nova-pro-v1"},

		// no prefix: pass through unchanged
		{"claude-sonnet-4-6", "claude-sonnet-4-6"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
		{"", ""},

		// degenerate but never empty for slash-carrying input
		{"anthropic/", "anthropic/"},
	}
	for _, tt := range tests {
		if got := NativeID(tt.id); got != tt.want {
			t.Errorf("NativeID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestNativeIDIdempotent(t *testing.T) {
	ids := []string{
		"anthropic/claude-sonnet-4.6",
		"google/gemini-2.5-flash",
		"meta-llama/llama-3.3-70b-instruct",
		"moonshotai/kimi-k2",
	}
	for _, id := range ids {
		once := NativeID(id)
		if once == "" {
			t.Errorf("NativeID(%q) = %q, want non-empty", id, once)
		}
		if twice := NativeID(once); twice != once {
			t.Errorf("NativeID(NativeID(%q)) = %q, want %q", id, twice, once)
		}
	}
}

func TestProviders(t *testing.T) {
	want := []string{
		"anthropic",
		"cohere",
		"deepseek",
		"google",
		"meta-llama",
		"mistralai",
		"openai",
		"qwen",
		"x-ai",
	}
	if diff := cmp.Diff(want, Providers()); diff != "" {
		t.Errorf("Providers() mismatch (-want +got):\n%s", diff)
	}
}
