package config

import (
	"os"
	"testing"
)

func TestCredentials_SecretsFileWins(t *testing.T) {
	tmp := "test_secrets.json"
	raw := []byte(`{"SERPAPI_KEY": "from-file"}`)
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		t.Fatalf("write tmp secrets: %v", err)
	}
	defer os.Remove(tmp)
	t.Setenv("SERPAPI_KEY", "from-env")

	creds := LoadCredentials(tmp)
	if got := creds.Get(SerpAPIKey); got != "from-file" {
		t.Errorf("expected secrets file to win, got %q", got)
	}
}

func TestCredentials_EnvFallback(t *testing.T) {
	tmp := "test_secrets_empty.json"
	if err := os.WriteFile(tmp, []byte(`{}`), 0600); err != nil {
		t.Fatalf("write tmp secrets: %v", err)
	}
	defer os.Remove(tmp)
	t.Setenv("GOOGLE_API_KEY", "env-key")

	creds := LoadCredentials(tmp)
	if got := creds.Get(GoogleAPIKey); got != "env-key" {
		t.Errorf("expected env fallback, got %q", got)
	}
}

func TestCredentials_MissingFileIsNotFatal(t *testing.T) {
	t.Setenv("SERPAPI_KEY", "env-only")

	creds := LoadCredentials("no_such_secrets.json")
	if got := creds.Get(SerpAPIKey); got != "env-only" {
		t.Errorf("expected env lookup despite missing file, got %q", got)
	}
}

func TestCredentials_Unconfigured(t *testing.T) {
	t.Setenv("SERPAPI_KEY", "")

	creds := LoadCredentials("no_such_secrets.json")
	if got := creds.Get(SerpAPIKey); got != "" {
		t.Errorf("expected empty value for unconfigured key, got %q", got)
	}
}
