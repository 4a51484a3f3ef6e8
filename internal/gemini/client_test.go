package gemini

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"
)

func TestGenerate_RequestShape(t *testing.T) {
	var gotPath, gotKey string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotBody, _ = io.ReadAll(r.Body)
		fmt.Fprint(w, `{"candidates": [{"content": {"parts": [{"text": "digest"}]}}]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	text, err := client.Generate(context.Background(), "summarize this", "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "digest" {
		t.Errorf("text = %q", text)
	}
	if want := "/v1beta/models/" + ModelName + ":generateContent"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}

	body := gjson.ParseBytes(gotBody)
	if got := body.Get("contents.0.parts.0.text").String(); got != "summarize this" {
		t.Errorf("prompt in payload = %q", got)
	}
	cfg := body.Get("generationConfig")
	if cfg.Get("temperature").Float() != Temperature {
		t.Errorf("temperature = %v", cfg.Get("temperature").Float())
	}
	if cfg.Get("topP").Float() != TopP {
		t.Errorf("topP = %v", cfg.Get("topP").Float())
	}
	if cfg.Get("topK").Int() != TopK {
		t.Errorf("topK = %v", cfg.Get("topK").Int())
	}
	if cfg.Get("maxOutputTokens").Int() != MaxOutputTokens {
		t.Errorf("maxOutputTokens = %v", cfg.Get("maxOutputTokens").Int())
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error": {"message": "API key not valid"}}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Generate(context.Background(), "prompt", "bad-key")
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("expected provider message in error, got: %v", err)
	}
}

func TestGenerate_NoText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates": [{"finishReason": "SAFETY"}]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Generate(context.Background(), "prompt", "key")
	if err == nil {
		t.Fatal("expected error when response has no text")
	}
	if !strings.Contains(err.Error(), "SAFETY") {
		t.Errorf("expected finish reason in error, got: %v", err)
	}
}

func TestGenerate_Unreachable(t *testing.T) {
	client := NewClient("http://localhost:1", 500*time.Millisecond)
	_, err := client.Generate(context.Background(), "prompt", "key")
	if err == nil {
		t.Fatal("expected error for unreachable provider")
	}
}
