package mood

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// conditionMoods maps OpenWeatherMap condition labels to associated moods.
var conditionMoods = map[string]Set{
	"Clear":        NewSet(Happy, Energetic, Romantic, Excited),
	"Clouds":       NewSet(Melancholic, Nostalgic, Calm, Relaxed),
	"Rain":         NewSet(Sad, Melancholic, Nostalgic),
	"Drizzle":      NewSet(Relaxed, Calm, Melancholic),
	"Thunderstorm": NewSet(Angry, Energetic, Excited),
	"Snow":         NewSet(Calm, Nostalgic, Romantic),
	"Mist":         NewSet(Melancholic, Calm, Relaxed),
	"Fog":          NewSet(Melancholic, Calm, Relaxed),
	"Haze":         NewSet(Melancholic, Calm, Relaxed),
}

// temperatureBand is a half-open interval [min, max) in Celsius.
type temperatureBand struct {
	min, max float64
	moods    []Mood
}

// temperatureBands partition the temperature axis. Boundaries belong to the
// band that starts at them.
var temperatureBands = []temperatureBand{
	{math.Inf(-1), 0, []Mood{Melancholic, Calm}},
	{0, 10, []Mood{Calm, Relaxed, Melancholic}},
	{10, 20, []Mood{Relaxed, Calm, Nostalgic}},
	{20, 30, []Mood{Happy, Energetic, Romantic}},
	{30, math.Inf(1), []Mood{Energetic, Excited, Happy}},
}

// ForCondition returns the moods associated with a weather condition label.
// Unknown conditions yield an empty set.
func ForCondition(condition string) Set {
	if s, ok := conditionMoods[condition]; ok {
		return s
	}
	return NewSet()
}

// ForTemperature returns the moods associated with a temperature in Celsius.
// NaN and infinite values are rejected with ErrInvalidInput.
func ForTemperature(celsius float64) (Set, error) {
	moods, err := TemperatureMoods(celsius)
	if err != nil {
		return Set{}, err
	}
	return NewSet(moods...), nil
}

// TemperatureMoods is ForTemperature with the band's moods in table order.
func TemperatureMoods(celsius float64) ([]Mood, error) {
	if math.IsNaN(celsius) || math.IsInf(celsius, 0) {
		return nil, fmt.Errorf("%w: temperature must be a finite number, got %v", ErrInvalidInput, celsius)
	}

	for _, b := range temperatureBands {
		if celsius >= b.min && celsius < b.max {
			out := make([]Mood, len(b.moods))
			copy(out, b.moods)
			return out, nil
		}
	}

	// Unreachable: the bands cover every finite value.
	return nil, fmt.Errorf("%w: temperature %v outside known bands", ErrInvalidInput, celsius)
}

// ParseTemperature parses a textual temperature such as "21.5".
func ParseTemperature(s string) (float64, error) {
	t, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: temperature %q is not a number", ErrInvalidInput, s)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, fmt.Errorf("%w: temperature must be a finite number, got %q", ErrInvalidInput, s)
	}
	return t, nil
}
