package spotify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zmb3/spotify/v2"

	"github.com/justestif/go-tracktune/internal/metrics"
)

// DefaultLimit is the number of tracks requested per search.
const DefaultLimit = 10

// SearchTracks runs a track search for query and returns the hits in
// Spotify's relevance order. Returns an empty slice (not nil) if nothing matched.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) (tracks []Track, err error) {
	defer func(start time.Time) { metrics.ObserveUpstream("spotify", start, err) }(time.Now())

	if limit <= 0 {
		limit = DefaultLimit
	}

	result, err := c.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching tracks for %q: %w", query, err)
	}

	tracks = []Track{}
	if result == nil || result.Tracks == nil {
		return tracks, nil
	}

	for _, ft := range result.Tracks.Tracks {
		tracks = append(tracks, convertTrack(ft))
	}
	return tracks, nil
}

// convertTrack converts a Spotify FullTrack to a Track.
func convertTrack(ft spotify.FullTrack) Track {
	// Join artist names
	artists := make([]string, len(ft.Artists))
	for i, a := range ft.Artists {
		artists[i] = a.Name
	}

	return Track{
		ID:     ft.ID.String(),
		Name:   ft.Name,
		Artist: strings.Join(artists, ", "),
		URL:    ft.ExternalURLs["spotify"],
	}
}
