package events

import "event-finder/internal/search"

// Kind classifies the outcome of a pipeline step so callers can branch
// without inspecting error values.
type Kind string

const (
	KindOK            Kind = "ok"
	KindEmpty         Kind = "empty"
	KindConfigError   Kind = "config_error"
	KindProviderError Kind = "provider_error"
)

// Summary is the result of the summarization step. Text always holds a
// readable value: the generated digest on success, otherwise a formatted
// error message.
type Summary struct {
	Kind Kind   `json:"outcome"`
	Text string `json:"text"`
}

// Digest is the result of one full pipeline run. Summary is nil when the
// summarization step was never invoked (empty search, search failure,
// missing search credential).
type Digest struct {
	Kind    Kind                 `json:"outcome"`
	Message string               `json:"message,omitempty"`
	Events  []search.EventRecord `json:"events,omitempty"`
	Summary *Summary             `json:"summary,omitempty"`
}
