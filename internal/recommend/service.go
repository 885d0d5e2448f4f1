// Package recommend combines current weather, mood reasoning and song lookup
// into a single recommendation.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/justestif/go-tracktune/internal/mood"
	"github.com/justestif/go-tracktune/internal/songs"
	"github.com/justestif/go-tracktune/internal/weather"
)

// Error kinds for collaborator failures. Mood errors are reported as
// mood.ErrInvalidInput and mood.ErrMissingField.
var (
	// ErrWeatherUnavailable wraps any failure of the weather provider.
	ErrWeatherUnavailable = errors.New("weather unavailable")

	// ErrSongLookupFailure wraps transport failures of the song provider.
	ErrSongLookupFailure = errors.New("song lookup failure")
)

// WeatherProvider returns the current weather for a location.
type WeatherProvider interface {
	Fetch(ctx context.Context, location string) (weather.Observation, error)
}

// SongProvider returns a song for a mood. "No song found" is reported in the
// Recommendation, not as an error.
type SongProvider interface {
	FetchByMood(ctx context.Context, mood string) (songs.Recommendation, error)
}

// WeatherSummary is the part of an observation echoed back to callers.
type WeatherSummary struct {
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
	Conditions  string  `json:"conditions"`
}

// Result is a complete recommendation.
type Result struct {
	Weather            WeatherSummary       `json:"weather"`
	Mood               string               `json:"mood"`
	MoodMatchesWeather *bool                `json:"mood_matches_weather"` // nil when no mood was given
	SongRecommendation songs.Recommendation `json:"song_recommendation"`
}

// Suggestion is the weather-only answer: no song lookup.
type Suggestion struct {
	Weather       WeatherSummary `json:"weather"`
	SuggestedMood string         `json:"suggested_mood"`
}

// Service recommends songs from weather and an optional mood.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	weather WeatherProvider
	songs   SongProvider
}

// New creates a new recommendation service.
func New(w WeatherProvider, s SongProvider) *Service {
	return &Service{
		weather: w,
		songs:   s,
	}
}

// Recommend fetches the weather for location, settles on an effective mood and
// looks up a song for it. A blank userMood means the mood is derived from the
// weather and Result.MoodMatchesWeather stays nil.
func (s *Service) Recommend(ctx context.Context, location, userMood string) (*Result, error) {
	// 1. Current weather
	obs, err := s.observe(ctx, location)
	if err != nil {
		return nil, err
	}

	// 2. Effective mood
	var (
		effective string
		matches   *bool
	)
	if strings.TrimSpace(userMood) == "" {
		effective = mood.Derive(obs)
	} else {
		ok, err := mood.Matches(userMood, obs)
		if err != nil {
			return nil, err
		}
		effective = userMood
		matches = &ok
	}

	// 3. Song for that mood
	song, err := s.songs.FetchByMood(ctx, effective)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSongLookupFailure, err)
	}

	return &Result{
		Weather:            summarize(obs),
		Mood:               effective,
		MoodMatchesWeather: matches,
		SongRecommendation: song,
	}, nil
}

// SuggestedMoodFor returns the weather for location and the mood it suggests.
func (s *Service) SuggestedMoodFor(ctx context.Context, location string) (*Suggestion, error) {
	obs, err := s.observe(ctx, location)
	if err != nil {
		return nil, err
	}

	suggested, err := mood.Suggested(obs)
	if err != nil {
		return nil, err
	}

	return &Suggestion{
		Weather:       summarize(obs),
		SuggestedMood: suggested,
	}, nil
}

// observe fetches and checks the observation for location.
func (s *Service) observe(ctx context.Context, location string) (weather.Observation, error) {
	if strings.TrimSpace(location) == "" {
		return weather.Observation{}, fmt.Errorf("%w: location cannot be empty", mood.ErrInvalidInput)
	}

	obs, err := s.weather.Fetch(ctx, location)
	if err != nil {
		return weather.Observation{}, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}

	if err := mood.CheckObservation(obs); err != nil {
		return weather.Observation{}, err
	}
	return obs, nil
}

func summarize(obs weather.Observation) WeatherSummary {
	var temp float64
	if obs.Temperature != nil {
		temp = *obs.Temperature
	}
	return WeatherSummary{
		Description: obs.Description,
		Temperature: temp,
		Conditions:  obs.Conditions,
	}
}
