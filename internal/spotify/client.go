// Package spotify provides a wrapper around the Spotify Web API search endpoint.
package spotify

import (
	"context"
	"errors"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrMissingCredentials is returned when the client ID or secret is not set.
var ErrMissingCredentials = errors.New("missing Spotify client ID or secret")

// Config holds Spotify application credentials.
type Config struct {
	ClientID     string
	ClientSecret string
}

// Client wraps the Spotify API client with convenience methods.
type Client struct {
	api *spotify.Client
}

// New creates a new Spotify client wrapper.
// The underlying client should already be authenticated.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// NewFromCredentials creates a client authenticated with the client
// credentials flow. Tokens are fetched lazily on the first request and
// refreshed by the oauth2 transport.
func NewFromCredentials(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	return New(spotify.New(creds.Client(ctx))), nil
}
