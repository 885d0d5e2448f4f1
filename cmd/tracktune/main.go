// Package main is the entry point for the tracktune CLI and server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justestif/go-tracktune/internal/config"
	"github.com/justestif/go-tracktune/internal/lastfm"
	"github.com/justestif/go-tracktune/internal/logging"
	"github.com/justestif/go-tracktune/internal/recommend"
	"github.com/justestif/go-tracktune/internal/songs"
	"github.com/justestif/go-tracktune/internal/spotify"
	"github.com/justestif/go-tracktune/internal/weather"
)

// version is set at build time via ldflags.
var version = "dev"

// settings holds defaults, environment bindings and bound flags.
var settings = config.New()

var rootCmd = &cobra.Command{
	Use:   "tracktune",
	Short: "Song recommendations from the weather and your mood",
	Long: `tracktune looks up the current weather for a city, works out a mood that
fits it (or checks the one you give), and recommends a song for that mood.

Run "tracktune serve" for the web UI and JSON API, or use the recommend and
weather subcommands from the terminal.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tracktune.yaml or ~/.config/tracktune/tracktune.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("song-provider", "", "song provider: lastfm or spotify")

	_ = settings.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = settings.BindPFlag("song_provider", rootCmd.PersistentFlags().Lookup("song-provider"))
}

// loadConfig reads and validates configuration and initializes logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(settings, path)
	if err != nil {
		return nil, err
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if used := settings.ConfigFileUsed(); used != "" {
		logging.Debug().Str("file", used).Msg("using config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newRecommender wires the weather client and the configured song provider.
func newRecommender(ctx context.Context, cfg *config.Config) (*recommend.Service, error) {
	weatherClient, err := weather.NewClient(cfg.WeatherClientConfig())
	if err != nil {
		return nil, fmt.Errorf("creating weather client: %w", err)
	}

	source, err := newTrackSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return recommend.New(weatherClient, songs.NewService(source, cfg.SongOptions()...)), nil
}

// newTrackSource builds the track source for cfg.SongProvider.
func newTrackSource(ctx context.Context, cfg *config.Config) (songs.TrackSource, error) {
	switch cfg.SongProvider {
	case config.ProviderSpotify:
		client, err := spotify.NewFromCredentials(ctx, cfg.SpotifyClientConfig())
		if err != nil {
			return nil, fmt.Errorf("creating spotify client: %w", err)
		}
		return songs.NewSpotifySource(client), nil
	default:
		client, err := lastfm.NewClient(cfg.LastFMClientConfig())
		if err != nil {
			return nil, fmt.Errorf("creating last.fm client: %w", err)
		}
		return songs.NewLastFMSource(client), nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
