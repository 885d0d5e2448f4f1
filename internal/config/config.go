// Package config loads TrackTune configuration from defaults, an optional
// YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/justestif/go-tracktune/internal/lastfm"
	"github.com/justestif/go-tracktune/internal/songs"
	"github.com/justestif/go-tracktune/internal/spotify"
	"github.com/justestif/go-tracktune/internal/weather"
)

// Song providers.
const (
	ProviderLastFM  = "lastfm"
	ProviderSpotify = "spotify"
)

// Validation errors.
var (
	ErrMissingWeatherKey         = errors.New("missing OPENWEATHERMAP_API_KEY")
	ErrMissingLastFMKey          = errors.New("missing LASTFM_API_KEY")
	ErrMissingSpotifyCredentials = errors.New("missing SPOTIFY_ID or SPOTIFY_SECRET")
	ErrUnknownSongProvider       = errors.New("unknown song provider")
)

// Config is the complete application configuration.
type Config struct {
	Addr         string        `mapstructure:"addr"`
	SongProvider string        `mapstructure:"song_provider"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`

	Weather   WeatherConfig   `mapstructure:"weather"`
	LastFM    LastFMConfig    `mapstructure:"lastfm"`
	Spotify   SpotifyConfig   `mapstructure:"spotify"`
	Songs     SongsConfig     `mapstructure:"songs"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// WeatherConfig configures the OpenWeatherMap client.
type WeatherConfig struct {
	APIKey string `mapstructure:"api_key"`
	URL    string `mapstructure:"url"`
}

// LastFMConfig configures the Last.fm client.
type LastFMConfig struct {
	APIKey string `mapstructure:"api_key"`
	URL    string `mapstructure:"url"`
}

// SpotifyConfig holds Spotify application credentials.
type SpotifyConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

// SongsConfig tunes song lookup.
type SongsConfig struct {
	FallbackTag string `mapstructure:"fallback_tag"`
	Limit       int    `mapstructure:"limit"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RateLimitConfig configures per-IP request limiting.
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
	Disabled bool          `mapstructure:"disabled"`
}

// envBindings maps config keys to environment variable names.
var envBindings = map[string][]string{
	"addr":                  {"TRACKTUNE_ADDR"},
	"song_provider":         {"TRACKTUNE_SONG_PROVIDER"},
	"http_timeout":          {"TRACKTUNE_HTTP_TIMEOUT"},
	"weather.api_key":       {"OPENWEATHERMAP_API_KEY"},
	"weather.url":           {"WEATHER_API_URL"},
	"lastfm.api_key":        {"LASTFM_API_KEY"},
	"lastfm.url":            {"LASTFM_API_URL"},
	"spotify.client_id":     {"SPOTIFY_ID"},
	"spotify.client_secret": {"SPOTIFY_SECRET"},
	"log.level":             {"LOG_LEVEL"},
	"log.format":            {"LOG_FORMAT"},
	"rate_limit.requests":   {"TRACKTUNE_RATE_LIMIT_REQUESTS"},
	"rate_limit.window":     {"TRACKTUNE_RATE_LIMIT_WINDOW"},
	"rate_limit.disabled":   {"TRACKTUNE_RATE_LIMIT_DISABLED"},
}

// New returns a viper instance with defaults and environment bindings applied.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("addr", "0.0.0.0:8000")
	v.SetDefault("song_provider", ProviderLastFM)
	v.SetDefault("http_timeout", 10*time.Second)
	v.SetDefault("weather.url", weather.DefaultBaseURL)
	v.SetDefault("lastfm.url", lastfm.DefaultBaseURL)
	v.SetDefault("songs.fallback_tag", songs.DefaultFallbackTag)
	v.SetDefault("songs.limit", songs.DefaultLimit)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("rate_limit.requests", 60)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("rate_limit.disabled", false)

	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	return v
}

// Load reads configuration. When path is empty, tracktune.yaml is searched in
// the working directory and ~/.config/tracktune; a missing file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("tracktune")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tracktune"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.SongProvider = strings.ToLower(strings.TrimSpace(cfg.SongProvider))

	return &cfg, nil
}

// Validate checks that the credentials for the selected services are present.
func (c *Config) Validate() error {
	var errs []error

	if c.Weather.APIKey == "" {
		errs = append(errs, ErrMissingWeatherKey)
	}

	switch c.SongProvider {
	case ProviderLastFM:
		if c.LastFM.APIKey == "" {
			errs = append(errs, ErrMissingLastFMKey)
		}
	case ProviderSpotify:
		if c.Spotify.ClientID == "" || c.Spotify.ClientSecret == "" {
			errs = append(errs, ErrMissingSpotifyCredentials)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownSongProvider, c.SongProvider))
	}

	return errors.Join(errs...)
}

// WeatherClientConfig returns the OpenWeatherMap client configuration.
func (c *Config) WeatherClientConfig() *weather.Config {
	return &weather.Config{APIKey: c.Weather.APIKey, BaseURL: c.Weather.URL, Timeout: c.HTTPTimeout}
}

// LastFMClientConfig returns the Last.fm client configuration.
func (c *Config) LastFMClientConfig() *lastfm.Config {
	return &lastfm.Config{APIKey: c.LastFM.APIKey, BaseURL: c.LastFM.URL, Timeout: c.HTTPTimeout}
}

// SongOptions returns the song service options.
func (c *Config) SongOptions() []songs.Option {
	return []songs.Option{
		songs.WithFallbackTag(c.Songs.FallbackTag),
		songs.WithLimit(c.Songs.Limit),
	}
}

// SpotifyClientConfig returns the Spotify credentials.
func (c *Config) SpotifyClientConfig() spotify.Config {
	return spotify.Config{ClientID: c.Spotify.ClientID, ClientSecret: c.Spotify.ClientSecret}
}
