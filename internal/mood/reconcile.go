package mood

import (
	"errors"
	"fmt"
	"strings"

	"github.com/justestif/go-tracktune/internal/weather"
)

// Error kinds reported by this package.
var (
	// ErrInvalidInput is returned for an empty mood or a non-numeric temperature.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingField is returned when an observation lacks conditions or temperature.
	ErrMissingField = errors.New("missing field")
)

// CheckObservation reports ErrMissingField when obs lacks the fields needed
// for mood reasoning.
func CheckObservation(obs weather.Observation) error {
	if strings.TrimSpace(obs.Conditions) == "" {
		return fmt.Errorf("%w: conditions", ErrMissingField)
	}
	if obs.Temperature == nil {
		return fmt.Errorf("%w: temperature", ErrMissingField)
	}
	return nil
}

// Candidates returns the union of condition moods and temperature moods for obs.
func Candidates(obs weather.Observation) (Set, error) {
	if err := CheckObservation(obs); err != nil {
		return Set{}, err
	}

	byTemp, err := ForTemperature(*obs.Temperature)
	if err != nil {
		return Set{}, err
	}

	return ForCondition(obs.Conditions).Union(byTemp), nil
}

// Derive picks the effective mood for obs: the highest-priority vocabulary
// mood among its candidates, or DefaultMood when there are none. Fields that
// are missing or unusable contribute no candidates.
func Derive(obs weather.Observation) string {
	candidates := ForCondition(obs.Conditions)
	if obs.Temperature != nil {
		if byTemp, err := ForTemperature(*obs.Temperature); err == nil {
			candidates = candidates.Union(byTemp)
		}
	}

	if m, ok := candidates.First(); ok {
		return string(m)
	}
	return string(DefaultMood)
}

// Suggested is Derive for a complete observation.
func Suggested(obs weather.Observation) (string, error) {
	if err := CheckObservation(obs); err != nil {
		return "", err
	}
	return Derive(obs), nil
}

// Matches reports whether userMood is one of the moods suggested by obs.
// The comparison is case-insensitive.
func Matches(userMood string, obs weather.Observation) (bool, error) {
	if strings.TrimSpace(userMood) == "" {
		return false, fmt.Errorf("%w: mood cannot be empty", ErrInvalidInput)
	}

	candidates, err := Candidates(obs)
	if err != nil {
		return false, err
	}

	return candidates.Has(Normalize(userMood)), nil
}
