package songs

import (
	"context"

	"github.com/justestif/go-tracktune/internal/lastfm"
	"github.com/justestif/go-tracktune/internal/spotify"
)

// LastFMSource looks up tracks with Last.fm tag.getTopTracks.
type LastFMSource struct {
	client *lastfm.Client
}

// NewLastFMSource wraps a Last.fm client as a TrackSource.
func NewLastFMSource(client *lastfm.Client) *LastFMSource {
	return &LastFMSource{client: client}
}

// TracksByTag implements TrackSource.
func (s *LastFMSource) TracksByTag(ctx context.Context, tag string, limit int) ([]Track, error) {
	found, err := s.client.TopTracksByTag(ctx, tag, limit)
	if err != nil {
		return nil, err
	}

	tracks := make([]Track, len(found))
	for i, t := range found {
		tracks[i] = Track{Title: t.Name, Artist: t.Artist.Name, URL: t.URL}
	}
	return tracks, nil
}

// SpotifySource looks up tracks with a Spotify track search on the tag.
type SpotifySource struct {
	client *spotify.Client
}

// NewSpotifySource wraps a Spotify client as a TrackSource.
func NewSpotifySource(client *spotify.Client) *SpotifySource {
	return &SpotifySource{client: client}
}

// TracksByTag implements TrackSource.
func (s *SpotifySource) TracksByTag(ctx context.Context, tag string, limit int) ([]Track, error) {
	found, err := s.client.SearchTracks(ctx, tag, limit)
	if err != nil {
		return nil, err
	}

	tracks := make([]Track, len(found))
	for i, t := range found {
		tracks[i] = Track{Title: t.Name, Artist: t.Artist, URL: t.URL}
	}
	return tracks, nil
}
