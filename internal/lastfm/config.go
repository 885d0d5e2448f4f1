// Package lastfm provides Last.fm API integration for looking up tracks by tag.
package lastfm

import (
	"errors"
	"time"
)

// DefaultBaseURL is the Last.fm REST endpoint.
const DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

// ErrMissingAPIKey is returned when no Last.fm API key is configured.
var ErrMissingAPIKey = errors.New("missing Last.fm API key")

// Config holds Last.fm API configuration.
type Config struct {
	APIKey  string
	BaseURL string        // Optional; DefaultBaseURL when empty
	Timeout time.Duration // Optional; 10s when zero
}

// Validate returns ErrMissingAPIKey if the API key is not set.
func (c *Config) Validate() error {
	if c == nil || c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
