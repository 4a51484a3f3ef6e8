// internal/gemini/client.go
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the Google Generative Language API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// ModelName selects the hosted model used for digests.
const ModelName = "gemini-1.5-flash"

// Fixed decoding parameters for every generation call.
const (
	Temperature     = 0.4
	TopP            = 0.8
	TopK            = 40
	MaxOutputTokens = 500
)

// Client handles communication with the generative model provider.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new generative model client.
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

// Generate sends prompt to the model and returns its raw text output.
func (c *Client) Generate(ctx context.Context, prompt, apiKey string) (string, error) {
	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     Temperature,
			"topP":            TopP,
			"topK":            TopK,
			"maxOutputTokens": MaxOutputTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.BaseURL, ModelName)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if msg := gjson.GetBytes(respBody, "error.message").String(); msg != "" {
			return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, msg)
		}
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	text := gjson.GetBytes(respBody, "candidates.0.content.parts.0.text").String()
	if text == "" {
		if reason := gjson.GetBytes(respBody, "candidates.0.finishReason").String(); reason != "" {
			return "", fmt.Errorf("model returned no text (finish reason: %s)", reason)
		}
		return "", fmt.Errorf("model returned no text")
	}
	return text, nil
}
