package web

import (
	"context"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/justestif/go-tracktune/internal/logging"
	"github.com/justestif/go-tracktune/internal/metrics"
	"github.com/justestif/go-tracktune/internal/mood"
	"github.com/justestif/go-tracktune/internal/recommend"
	"github.com/justestif/go-tracktune/internal/songs"
	"github.com/justestif/go-tracktune/internal/validation"
)

// maxBodyBytes bounds the size of request bodies.
const maxBodyBytes = 1 << 16

// Recommender is implemented by *recommend.Service.
type Recommender interface {
	Recommend(ctx context.Context, location, userMood string) (*recommend.Result, error)
	SuggestedMoodFor(ctx context.Context, location string) (*recommend.Suggestion, error)
}

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	recommender Recommender
	static      fs.FS
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(recommender Recommender, static fs.FS) *Handlers {
	return &Handlers{
		recommender: recommender,
		static:      static,
	}
}

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	City string `json:"city" validate:"notblank,max=100"`
	Mood string `json:"mood" validate:"max=50"`
}

// RecommendResponse is the body of a successful POST /recommend.
type RecommendResponse struct {
	Location           string                   `json:"location"`
	City               string                   `json:"city"`
	Weather            recommend.WeatherSummary `json:"weather"`
	Mood               string                   `json:"mood"`
	MoodMatchesWeather *bool                    `json:"mood_matches_weather"`
	SongRecommendation songs.Recommendation     `json:"song_recommendation"`
}

// WeatherResponse is the body of GET /weather/{city}.
type WeatherResponse struct {
	Location      string                   `json:"location"`
	Weather       recommend.WeatherSummary `json:"weather"`
	SuggestedMood string                   `json:"suggested_mood"`
}

// MoodsResponse is the body of GET /moods.
type MoodsResponse struct {
	Condition   string   `json:"condition,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Moods       []string `json:"moods"`
}

// Index serves the single page UI (GET /).
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, h.static, "index.html")
}

// Health reports liveness (GET /health).
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Recommend returns a song for the weather in a city and an optional mood
// (POST /recommend).
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		metrics.Recommendations.WithLabelValues("error", "none").Inc()
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	req.City = strings.TrimSpace(req.City)
	req.Mood = strings.TrimSpace(req.Mood)

	if err := validation.ValidateStruct(&req); err != nil {
		metrics.Recommendations.WithLabelValues("error", "none").Inc()
		respondError(w, r, err)
		return
	}

	result, err := h.recommender.Recommend(r.Context(), req.City, req.Mood)
	if err != nil {
		metrics.Recommendations.WithLabelValues("error", "none").Inc()
		respondError(w, r, err)
		return
	}

	outcome := "success"
	if !result.SongRecommendation.Found() {
		outcome = "no_song"
	}
	metrics.Recommendations.WithLabelValues(outcome, metrics.MatchLabel(result.MoodMatchesWeather)).Inc()

	logging.Ctx(r.Context()).Info().
		Str("city", req.City).
		Str("mood", result.Mood).
		Str("outcome", outcome).
		Msg("recommendation served")

	writeJSON(w, r, http.StatusOK, RecommendResponse{
		Location:           req.City,
		City:               req.City,
		Weather:            result.Weather,
		Mood:               result.Mood,
		MoodMatchesWeather: result.MoodMatchesWeather,
		SongRecommendation: result.SongRecommendation,
	})
}

// Weather returns the weather in a city and the mood it suggests
// (GET /weather/{city}).
func (h *Handlers) Weather(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(chi.URLParam(r, "city"))

	suggestion, err := h.recommender.SuggestedMoodFor(r.Context(), city)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, WeatherResponse{
		Location:      city,
		Weather:       suggestion.Weather,
		SuggestedMood: suggestion.SuggestedMood,
	})
}

// Moods returns the candidate moods for a condition and/or temperature
// (GET /moods?condition=Rain&temperature=5).
func (h *Handlers) Moods(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	condition := strings.TrimSpace(q.Get("condition"))
	rawTemp := strings.TrimSpace(q.Get("temperature"))

	if condition == "" && rawTemp == "" {
		writeError(w, r, http.StatusBadRequest, "condition or temperature is required")
		return
	}

	resp := MoodsResponse{Condition: condition}
	set := mood.ForCondition(condition)

	if rawTemp != "" {
		t, err := mood.ParseTemperature(rawTemp)
		if err != nil {
			respondError(w, r, err)
			return
		}
		band, err := mood.ForTemperature(t)
		if err != nil {
			respondError(w, r, err)
			return
		}
		resp.Temperature = &t
		set = set.Union(band)
	}

	resp.Moods = set.Strings()
	writeJSON(w, r, http.StatusOK, resp)
}
