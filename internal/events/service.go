package events

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"event-finder/internal/config"
	"event-finder/internal/search"
)

// Searcher finds event records for a location.
type Searcher interface {
	FindEvents(ctx context.Context, location, apiKey string) ([]search.EventRecord, error)
}

// Generator produces free-text output from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt, apiKey string) (string, error)
}

// Service runs the search-then-summarize pipeline. Each call is stateless;
// credentials are resolved fresh on every run.
type Service struct {
	searcher Searcher
	model    Generator
	creds    config.CredentialLookup
}

// NewService wires the pipeline together.
func NewService(searcher Searcher, model Generator, creds config.CredentialLookup) *Service {
	return &Service{
		searcher: searcher,
		model:    model,
		creds:    creds,
	}
}

// Find runs the full pipeline for one location. It never returns an error:
// every failure mode is folded into the Digest outcome so the caller can
// render a banner and stay alive for the next attempt.
func (s *Service) Find(ctx context.Context, location string) Digest {
	apiKey := s.creds(config.SerpAPIKey)
	if apiKey == "" {
		log.Warnf("[Events] %s not configured", config.SerpAPIKey)
		return Digest{
			Kind:    KindConfigError,
			Message: fmt.Sprintf("%s not found. Please configure your API keys.", config.SerpAPIKey),
		}
	}

	records, err := s.searcher.FindEvents(ctx, location, apiKey)
	if err != nil {
		log.Warnf("[Events] search failed for %q: %v", location, err)
		return Digest{
			Kind:    KindProviderError,
			Message: fmt.Sprintf("Error fetching events: %v", err),
		}
	}
	if len(records) == 0 {
		return Digest{
			Kind:    KindEmpty,
			Message: "No events found for this location.",
		}
	}

	userInput := fmt.Sprintf("upcoming events in %s", location)
	summary := s.summarize(ctx, userInput, records)
	return Digest{
		Kind:    KindOK,
		Events:  records,
		Summary: summary,
	}
}

// summarize asks the model for a digest of records. The returned Summary
// always carries text: either the model output or a formatted error string.
func (s *Service) summarize(ctx context.Context, userInput string, records []search.EventRecord) *Summary {
	apiKey := s.creds(config.GoogleAPIKey)
	if apiKey == "" {
		log.Warnf("[Events] %s not configured", config.GoogleAPIKey)
		return &Summary{
			Kind: KindConfigError,
			Text: fmt.Sprintf("%s not found. Please configure your API keys.", config.GoogleAPIKey),
		}
	}

	text, err := s.model.Generate(ctx, buildPrompt(userInput, records), apiKey)
	if err != nil {
		log.Warnf("[Events] summarization failed: %v", err)
		return &Summary{
			Kind: KindProviderError,
			Text: fmt.Sprintf("Error generating summary: %v", err),
		}
	}
	return &Summary{Kind: KindOK, Text: text}
}
