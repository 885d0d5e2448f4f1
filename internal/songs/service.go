// Package songs picks a song for a mood from a tag-based track source.
package songs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultFallbackTag is queried when the mood's own tag has no tracks.
	DefaultFallbackTag = "alternative"

	// DefaultLimit is the number of tracks requested per tag.
	DefaultLimit = 10

	// NoteAlternative annotates a recommendation taken from the fallback tag.
	NoteAlternative = "No exact match for your mood, showing an alternative recommendation"

	// ErrorNoSongs is reported in Recommendation.Error when nothing was found.
	ErrorNoSongs = "No songs found for the given mood"
)

// ErrLookupFailed wraps transport failures of the track source.
var ErrLookupFailed = errors.New("song lookup failed")

// moodTags maps moods to the tag vocabulary of music services.
// Moods without an entry are used as tags verbatim.
var moodTags = map[string]string{
	"happy":       "happy",
	"sad":         "sad",
	"energetic":   "energetic",
	"relaxed":     "chill",
	"angry":       "angry",
	"romantic":    "romantic",
	"melancholic": "melancholy",
	"excited":     "upbeat",
	"calm":        "calm",
	"nostalgic":   "nostalgic",
}

// TagFor returns the tag to query for a mood. Lookup is case-insensitive.
func TagFor(mood string) string {
	key := strings.ToLower(strings.TrimSpace(mood))
	if tag, ok := moodTags[key]; ok {
		return tag
	}
	return key
}

// Track is a track returned by a TrackSource.
type Track struct {
	Title  string
	Artist string
	URL    string
}

// TrackSource abstracts a tag-based track search for testing.
type TrackSource interface {
	TracksByTag(ctx context.Context, tag string, limit int) ([]Track, error)
}

// Recommendation is either a song or, when nothing was found, an error message.
// "Nothing found" is data, not a Go error.
type Recommendation struct {
	Title  string `json:"title,omitempty"`
	Artist string `json:"artist,omitempty"`
	URL    string `json:"url,omitempty"`
	Mood   string `json:"mood,omitempty"`
	Note   string `json:"note,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Found reports whether the recommendation carries a song.
func (r Recommendation) Found() bool {
	return r.Error == ""
}

// Service implements mood-based song lookup over a TrackSource.
type Service struct {
	source      TrackSource
	fallbackTag string
	limit       int
}

// Option configures a Service.
type Option func(*Service)

// WithFallbackTag sets the tag queried when the mood's tag has no tracks.
func WithFallbackTag(tag string) Option {
	return func(s *Service) {
		if tag != "" {
			s.fallbackTag = tag
		}
	}
}

// WithLimit sets the number of tracks requested per tag.
func WithLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.limit = n
		}
	}
}

// NewService creates a new song service.
func NewService(source TrackSource, opts ...Option) *Service {
	s := &Service{
		source:      source,
		fallbackTag: DefaultFallbackTag,
		limit:       DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchByMood returns the top track for the mood's tag, or the top track of
// the fallback tag with a note when the mood's tag is empty. When both are
// empty the returned Recommendation carries ErrorNoSongs and err is nil.
func (s *Service) FetchByMood(ctx context.Context, mood string) (Recommendation, error) {
	tag := TagFor(mood)

	tracks, err := s.source.TracksByTag(ctx, tag, s.limit)
	if err != nil {
		return Recommendation{}, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if len(tracks) > 0 {
		return toRecommendation(tracks[0], mood, ""), nil
	}

	tracks, err = s.source.TracksByTag(ctx, s.fallbackTag, s.limit)
	if err != nil {
		return Recommendation{}, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if len(tracks) > 0 {
		return toRecommendation(tracks[0], mood, NoteAlternative), nil
	}

	return Recommendation{Error: ErrorNoSongs}, nil
}

func toRecommendation(t Track, mood, note string) Recommendation {
	return Recommendation{
		Title:  t.Title,
		Artist: t.Artist,
		URL:    t.URL,
		Mood:   mood,
		Note:   note,
	}
}
