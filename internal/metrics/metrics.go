// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendations counts /recommend outcomes.
	// Labels:
	//   - outcome: "success", "no_song", "error"
	//   - matched: "true", "false", "none" (no user mood)
	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracktune_recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"outcome", "matched"},
	)

	// UpstreamDuration measures calls to weather and music services.
	// Labels:
	//   - service: "openweathermap", "lastfm", "spotify"
	//   - outcome: "success", "error"
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracktune_upstream_request_duration_seconds",
			Help:    "Duration of upstream API calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"service", "outcome"},
	)
)

// MatchLabel renders an optional match flag as a label value.
func MatchLabel(matched *bool) string {
	if matched == nil {
		return "none"
	}
	return strconv.FormatBool(*matched)
}

// ObserveUpstream records the duration of an upstream call started at start.
func ObserveUpstream(service string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	UpstreamDuration.WithLabelValues(service, outcome).Observe(time.Since(start).Seconds())
}
