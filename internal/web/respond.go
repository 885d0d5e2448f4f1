package web

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/justestif/go-tracktune/internal/logging"
	"github.com/justestif/go-tracktune/internal/mood"
	"github.com/justestif/go-tracktune/internal/recommend"
	"github.com/justestif/go-tracktune/internal/validation"
	"github.com/justestif/go-tracktune/internal/weather"
)

// errorResponse is the body of every error response.
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON writes v as JSON with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("encoding response")
		http.Error(w, `{"detail":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError writes {"detail": msg} with the given status.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Detail: msg})
}

// statusFor maps an error to its HTTP status. Not-found is checked before
// the broader weather failure it is wrapped in.
func statusFor(err error) int {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, mood.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, weather.ErrLocationNotFound):
		return http.StatusNotFound
	case errors.Is(err, mood.ErrMissingField),
		errors.Is(err, recommend.ErrWeatherUnavailable),
		errors.Is(err, recommend.ErrSongLookupFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the detail shown to clients. Failures past the
// request itself are reported by kind only; their chains carry upstream text.
func publicMessage(err error, status int) string {
	switch {
	case errors.Is(err, weather.ErrLocationNotFound):
		return weather.ErrLocationNotFound.Error()
	case status < http.StatusInternalServerError:
		return err.Error()
	case errors.Is(err, mood.ErrMissingField):
		return "incomplete weather data"
	case errors.Is(err, recommend.ErrWeatherUnavailable):
		return recommend.ErrWeatherUnavailable.Error()
	case errors.Is(err, recommend.ErrSongLookupFailure):
		return recommend.ErrSongLookupFailure.Error()
	default:
		return "internal server error"
	}
}

// respondError logs err and writes the mapped status.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := publicMessage(err, status)

	event := logging.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	writeError(w, r, status, msg)
}
