// internal/search/client.go
package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the SerpApi JSON endpoint.
const DefaultBaseURL = "https://serpapi.com/search.json"

// MaxEvents caps how many records one query may return.
const MaxEvents = 5

// Placeholder values substituted for absent provider sub-fields.
const (
	PlaceholderTitle   = "No title"
	PlaceholderLink    = "#"
	PlaceholderSource  = "Unknown source"
	PlaceholderDate    = "Date not available"
	PlaceholderSnippet = "No description"
)

// EventRecord is one normalized news result about a local event.
type EventRecord struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Source  string `json:"source"`
	Date    string `json:"date"`
	Snippet string `json:"snippet"`
}

// Client handles communication with the SerpApi search provider.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new search provider client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FindEvents queries the provider for upcoming events near location and
// returns at most MaxEvents normalized records. A nil slice with nil error
// means the provider answered but had no news results.
func (c *Client) FindEvents(ctx context.Context, location, apiKey string) ([]EventRecord, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	// Fixed query shape: Google news tab, India region, English, events
	// category, safe search off.
	q := u.Query()
	q.Set("api_key", apiKey)
	q.Set("engine", "google")
	q.Set("q", fmt.Sprintf("upcoming events in %s", location))
	q.Set("google_domain", "google.co.in")
	q.Set("gl", "in")
	q.Set("hl", "en")
	q.Set("tbs", "events")
	q.Set("tbm", "nws")
	q.Set("safe", "off")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if msg := gjson.GetBytes(body, "error").String(); msg != "" {
			return nil, fmt.Errorf("search provider returned status %d: %s", resp.StatusCode, msg)
		}
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	items := gjson.GetBytes(body, "news_results").Array()
	if len(items) == 0 {
		return nil, nil
	}

	records := make([]EventRecord, 0, MaxEvents)
	for _, item := range items {
		if len(records) >= MaxEvents {
			break
		}
		records = append(records, EventRecord{
			Title:   fieldOr(item, "title", PlaceholderTitle),
			Link:    fieldOr(item, "link", PlaceholderLink),
			Source:  fieldOr(item, "source", PlaceholderSource),
			Date:    fieldOr(item, "date", PlaceholderDate),
			Snippet: fieldOr(item, "snippet", PlaceholderSnippet),
		})
	}
	return records, nil
}

func fieldOr(item gjson.Result, key, placeholder string) string {
	if v := item.Get(key).String(); v != "" {
		return v
	}
	return placeholder
}
