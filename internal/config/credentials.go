package config

import (
	"encoding/json"
	"os"
)

// Credential names expected by the pipeline.
const (
	SerpAPIKey   = "SERPAPI_KEY"
	GoogleAPIKey = "GOOGLE_API_KEY"
)

// CredentialLookup resolves a named credential. An empty return value means
// the credential is not configured anywhere.
type CredentialLookup func(name string) string

// Credentials resolves API keys with fixed precedence: the secrets file
// first, then the process environment. The secrets file is a flat JSON
// object of string values; a missing or unreadable file just means every
// lookup falls through to the environment.
type Credentials struct {
	secrets map[string]string
}

// LoadCredentials reads the secrets file at path. It never fails: absence
// of the file is a normal deployment (env-only keys).
func LoadCredentials(path string) *Credentials {
	c := &Credentials{secrets: map[string]string{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	_ = json.Unmarshal(raw, &c.secrets)
	return c
}

// Get returns the credential value, secrets file first then environment.
func (c *Credentials) Get(name string) string {
	if v, ok := c.secrets[name]; ok && v != "" {
		return v
	}
	return os.Getenv(name)
}

// Lookup adapts Credentials to the CredentialLookup func type.
func (c *Credentials) Lookup() CredentialLookup {
	return c.Get
}
