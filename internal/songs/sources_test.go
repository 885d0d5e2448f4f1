package songs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	zspotify "github.com/zmb3/spotify/v2"

	"github.com/justestif/go-tracktune/internal/lastfm"
	"github.com/justestif/go-tracktune/internal/spotify"
)

func TestLastFMSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "upbeat", r.URL.Query().Get("tag"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tracks":{"track":[
			{"name":"Mr. Blue Sky","url":"https://www.last.fm/music/ELO/_/Mr.+Blue+Sky","artist":{"name":"Electric Light Orchestra"}}
		]}}`))
	}))
	defer server.Close()

	client, err := lastfm.NewClient(&lastfm.Config{APIKey: "test-key", BaseURL: server.URL + "/"})
	require.NoError(t, err)

	got, err := NewService(NewLastFMSource(client)).FetchByMood(context.Background(), "excited")
	require.NoError(t, err)

	assert.Equal(t, Recommendation{
		Title:  "Mr. Blue Sky",
		Artist: "Electric Light Orchestra",
		URL:    "https://www.last.fm/music/ELO/_/Mr.+Blue+Sky",
		Mood:   "excited",
	}, got)
}

func TestSpotifySource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "melancholy", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tracks":{"items":[
			{"id":"t1","name":"Holocene","artists":[{"name":"Bon Iver"},{"name":"Justin Vernon"}],
			 "external_urls":{"spotify":"https://open.spotify.com/track/t1"}}
		],"total":1}}`))
	}))
	defer server.Close()

	api := zspotify.New(server.Client(), zspotify.WithBaseURL(server.URL+"/"))
	source := NewSpotifySource(spotify.New(api))

	tracks, err := source.TracksByTag(context.Background(), "melancholy", 5)
	require.NoError(t, err)
	assert.Equal(t, []Track{
		{Title: "Holocene", Artist: "Bon Iver, Justin Vernon", URL: "https://open.spotify.com/track/t1"},
	}, tracks)

	got, err := NewService(source).FetchByMood(context.Background(), "melancholic")
	require.NoError(t, err)
	assert.Equal(t, "Holocene", got.Title)
	assert.Equal(t, "melancholic", got.Mood)
	assert.Empty(t, got.Note)
}

func TestSpotifySource_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tracks":{"items":[],"total":0}}`))
	}))
	defer server.Close()

	api := zspotify.New(server.Client(), zspotify.WithBaseURL(server.URL+"/"))

	got, err := NewService(NewSpotifySource(spotify.New(api))).FetchByMood(context.Background(), "happy")
	require.NoError(t, err)
	assert.Equal(t, Recommendation{Error: ErrorNoSongs}, got)
}
