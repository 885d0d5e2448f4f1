package mood

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForTemperature(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		want []Mood
	}{
		{name: "deep freeze", temp: -25, want: []Mood{Melancholic, Calm}},
		{name: "just below zero", temp: -0.1, want: []Mood{Melancholic, Calm}},
		{name: "zero starts the cold band", temp: 0, want: []Mood{Calm, Relaxed, Melancholic}},
		{name: "cold", temp: 5, want: []Mood{Calm, Relaxed, Melancholic}},
		{name: "just below ten", temp: 9.99, want: []Mood{Calm, Relaxed, Melancholic}},
		{name: "ten starts the mild band", temp: 10, want: []Mood{Relaxed, Calm, Nostalgic}},
		{name: "mild", temp: 15, want: []Mood{Relaxed, Calm, Nostalgic}},
		{name: "twenty starts the warm band", temp: 20, want: []Mood{Happy, Energetic, Romantic}},
		{name: "warm", temp: 25, want: []Mood{Happy, Energetic, Romantic}},
		{name: "thirty starts the hot band", temp: 30, want: []Mood{Energetic, Excited, Happy}},
		{name: "scorching", temp: 48, want: []Mood{Energetic, Excited, Happy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TemperatureMoods(tt.temp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			set, err := ForTemperature(tt.temp)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), set.Len())
			for _, m := range tt.want {
				assert.True(t, set.Has(m), "expected %s in set", m)
			}
		})
	}
}

func TestForTemperature_InvalidInput(t *testing.T) {
	for _, temp := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ForTemperature(temp)
		assert.ErrorIs(t, err, ErrInvalidInput, "temp %v", temp)
	}
}

func TestParseTemperature(t *testing.T) {
	got, err := ParseTemperature(" 21.5 ")
	require.NoError(t, err)
	assert.Equal(t, 21.5, got)

	got, err = ParseTemperature("-3")
	require.NoError(t, err)
	assert.Equal(t, -3.0, got)

	for _, in := range []string{"x", "", "NaN", "+Inf", "12c"} {
		_, err := ParseTemperature(in)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", in)
	}
}

func TestForCondition(t *testing.T) {
	tests := []struct {
		condition string
		want      []Mood
	}{
		{"Clear", []Mood{Happy, Energetic, Romantic, Excited}},
		{"Clouds", []Mood{Relaxed, Melancholic, Calm, Nostalgic}},
		{"Rain", []Mood{Sad, Melancholic, Nostalgic}},
		{"Drizzle", []Mood{Relaxed, Melancholic, Calm}},
		{"Thunderstorm", []Mood{Energetic, Angry, Excited}},
		{"Snow", []Mood{Romantic, Calm, Nostalgic}},
		{"Mist", []Mood{Relaxed, Melancholic, Calm}},
		{"Fog", []Mood{Relaxed, Melancholic, Calm}},
		{"Haze", []Mood{Relaxed, Melancholic, Calm}},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			assert.Equal(t, tt.want, ForCondition(tt.condition).Sorted())
		})
	}
}

func TestForCondition_Unknown(t *testing.T) {
	assert.Equal(t, 0, ForCondition("Tornado").Len())
	assert.Equal(t, 0, ForCondition("clear").Len(), "labels are case-sensitive")
	assert.Equal(t, 0, ForCondition("").Len())
}

func TestTemperatureMoods_ReturnsCopy(t *testing.T) {
	first, err := TemperatureMoods(25)
	require.NoError(t, err)
	first[0] = Angry

	second, err := TemperatureMoods(25)
	require.NoError(t, err)
	assert.Equal(t, Happy, second[0])
}
