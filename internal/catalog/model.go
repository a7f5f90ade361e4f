package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Entry represents one model record from the OpenRouter catalog.
// JSON field names match the /api/v1/models response schema exactly.
type Entry struct {
	ID                  string       `json:"id" yaml:"id"`
	Name                string       `json:"name" yaml:"name"`
	Created             int64        `json:"created,omitempty" yaml:"created,omitempty"`
	Description         string       `json:"description,omitempty" yaml:"description,omitempty"`
	ContextLength       int          `json:"context_length,omitempty" yaml:"context_length,omitempty"`
	Pricing             Pricing      `json:"pricing" yaml:"pricing"`
	Architecture        Architecture `json:"architecture" yaml:"architecture"`
	TopProvider         TopProvider  `json:"top_provider" yaml:"top_provider"`
	SupportedParameters []string     `json:"supported_parameters,omitempty" yaml:"supported_parameters,omitempty"`
}

// Pricing holds per-token rates as decimal strings, as served by the API.
type Pricing struct {
	Prompt     string `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Completion string `json:"completion,omitempty" yaml:"completion,omitempty"`
	Request    string `json:"request,omitempty" yaml:"request,omitempty"`
	Image      string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Architecture describes a model's supported modalities.
type Architecture struct {
	Modality         string   `json:"modality,omitempty" yaml:"modality,omitempty"`
	InputModalities  []string `json:"input_modalities,omitempty" yaml:"input_modalities,omitempty"`
	OutputModalities []string `json:"output_modalities,omitempty" yaml:"output_modalities,omitempty"`
	Tokenizer        string   `json:"tokenizer,omitempty" yaml:"tokenizer,omitempty"`
}

// TopProvider carries limits reported by the primary serving provider.
type TopProvider struct {
	ContextLength       int  `json:"context_length,omitempty" yaml:"context_length,omitempty"`
	MaxCompletionTokens int  `json:"max_completion_tokens,omitempty" yaml:"max_completion_tokens,omitempty"`
	IsModerated         bool `json:"is_moderated,omitempty" yaml:"is_moderated,omitempty"`
}

type modelsResponse struct {
	Data []Entry `json:"data"`
}

// ParseModels decodes an OpenRouter models response body into entries.
func ParseModels(body []byte) ([]Entry, error) {
	var resp modelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing models response: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("models response missing data field")
	}
	return resp.Data, nil
}

// Provider returns the namespace prefix of the entry ID, or "" when the
// ID carries no prefix.
func (e Entry) Provider() string {
	if i := strings.Index(e.ID, "/"); i >= 0 {
		return e.ID[:i]
	}
	return ""
}

// Inputs returns the input modalities, falling back to the combined
// modality string ("text+image->text") when the explicit list is absent.
func (e Entry) Inputs() []string {
	if len(e.Architecture.InputModalities) > 0 {
		return e.Architecture.InputModalities
	}
	m := e.Architecture.Modality
	if m == "" {
		return nil
	}
	if i := strings.Index(m, "->"); i >= 0 {
		m = m[:i]
	}
	return strings.Split(m, "+")
}

// Features derives capability flags from the supported_parameters list.
func (e Entry) Features() []string {
	var feats []string
	if e.hasParam("tools") {
		feats = append(feats, "tool_use")
	}
	if e.hasParam("response_format") || e.hasParam("structured_outputs") {
		feats = append(feats, "structured_output")
	}
	if e.hasParam("include_reasoning") || e.hasParam("reasoning") {
		feats = append(feats, "reasoning")
	}
	return feats
}

func (e Entry) hasParam(name string) bool {
	for _, p := range e.SupportedParameters {
		if p == name {
			return true
		}
	}
	return false
}
