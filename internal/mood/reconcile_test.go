package mood

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justestif/go-tracktune/internal/weather"
)

func obs(conditions string, temp float64) weather.Observation {
	return weather.Observation{Conditions: conditions, Temperature: weather.Celsius(temp)}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		mood string
		obs  weather.Observation
		want bool
	}{
		{name: "clear and warm is happy", mood: "happy", obs: obs("Clear", 25), want: true},
		{name: "clear and warm is energetic", mood: "energetic", obs: obs("Clear", 25), want: true},
		{name: "clear and warm is not sad", mood: "sad", obs: obs("Clear", 25), want: false},
		{name: "rain and cold is melancholic", mood: "melancholic", obs: obs("Rain", 5), want: true},
		{name: "temperature band alone matches", mood: "relaxed", obs: obs("Rain", 5), want: true},
		{name: "upper case", mood: "HAPPY", obs: obs("Clear", 25), want: true},
		{name: "title case", mood: "Happy", obs: obs("Clear", 25), want: true},
		{name: "surrounding spaces", mood: "  calm ", obs: obs("Snow", -2), want: true},
		{name: "snow is romantic", mood: "romantic", obs: obs("Snow", -2), want: true},
		{name: "free text never matches", mood: "groovy", obs: obs("Clear", 25), want: false},
		{name: "unknown condition uses temperature only", mood: "nostalgic", obs: obs("Tornado", 15), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Matches(tt.mood, tt.obs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatches_CaseInsensitive(t *testing.T) {
	o := obs("Clouds", 12)
	for _, m := range Vocabulary() {
		lower, err := Matches(string(m), o)
		require.NoError(t, err)
		upper, err := Matches(strings.ToUpper(string(m)), o)
		require.NoError(t, err)
		assert.Equal(t, lower, upper, "mood %s", m)
	}
}

func TestMatches_Errors(t *testing.T) {
	_, err := Matches("", obs("Clear", 25))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Matches("   ", obs("Clear", 25))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Matches("happy", weather.Observation{Conditions: "Clear"})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = Matches("happy", weather.Observation{Temperature: weather.Celsius(25)})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestSuggested(t *testing.T) {
	tests := []struct {
		name    string
		obs     weather.Observation
		allowed []Mood
		want    Mood
	}{
		{
			name:    "clear and warm",
			obs:     obs("Clear", 25),
			allowed: []Mood{Happy, Energetic, Romantic, Excited},
			want:    Happy,
		},
		{
			name:    "rain and cold",
			obs:     obs("Rain", 5),
			allowed: []Mood{Sad, Melancholic, Nostalgic, Calm, Relaxed},
			want:    Sad,
		},
		{
			name:    "snow below zero",
			obs:     obs("Snow", -2),
			allowed: []Mood{Calm, Nostalgic, Romantic, Melancholic},
			want:    Romantic,
		},
		{
			name:    "thunderstorm and hot",
			obs:     obs("Thunderstorm", 32),
			allowed: []Mood{Angry, Energetic, Excited, Happy},
			want:    Happy,
		},
		{
			name:    "unknown condition falls back to temperature",
			obs:     obs("Smoke", 15),
			allowed: []Mood{Relaxed, Calm, Nostalgic},
			want:    Relaxed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Suggested(tt.obs)
			require.NoError(t, err)
			assert.Contains(t, tt.allowed, Mood(got))
			assert.Equal(t, string(tt.want), got)
			assert.Equal(t, got, Derive(tt.obs))
		})
	}
}

func TestSuggested_Deterministic(t *testing.T) {
	o := obs("Clouds", 8)
	first, err := Suggested(o)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		got, err := Suggested(o)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestSuggested_MissingField(t *testing.T) {
	_, err := Suggested(weather.Observation{Conditions: "Clear"})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = Suggested(weather.Observation{Temperature: weather.Celsius(25)})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDerive_DefaultsToRelaxed(t *testing.T) {
	assert.Equal(t, "relaxed", Derive(weather.Observation{}))
	assert.Equal(t, "relaxed", Derive(weather.Observation{Conditions: "Tornado"}))
}

func TestCandidates(t *testing.T) {
	got, err := Candidates(obs("Snow", -2))
	require.NoError(t, err)
	assert.Equal(t, []string{"romantic", "melancholic", "calm", "nostalgic"}, got.Strings())
}
