package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	a := NewSet(Calm, Happy, Calm)
	b := NewSet(Sad, Happy)

	assert.Equal(t, 2, a.Len())
	assert.True(t, a.Has(Calm))
	assert.False(t, a.Has(Sad))

	u := a.Union(b)
	assert.Equal(t, []Mood{Happy, Sad, Calm}, u.Sorted())
	assert.Equal(t, 2, a.Len(), "union must not modify the receiver")

	first, ok := u.First()
	assert.True(t, ok)
	assert.Equal(t, Happy, first)

	_, ok = NewSet().First()
	assert.False(t, ok)
}

func TestSet_SortedWithUnknownMoods(t *testing.T) {
	s := NewSet("zen", Calm, "blue", Happy)
	assert.Equal(t, []Mood{Happy, Calm, "blue", "zen"}, s.Sorted())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Happy, Normalize("  HaPPy "))
	assert.True(t, Normalize("Nostalgic").Known())
	assert.False(t, Normalize("groovy").Known())
}

func TestVocabularyIsComplete(t *testing.T) {
	assert.Len(t, Vocabulary(), 10)
	seen := make(map[Mood]bool)
	for _, m := range Vocabulary() {
		assert.False(t, seen[m], "duplicate mood %s", m)
		seen[m] = true
	}

	for cond, set := range conditionMoods {
		for _, m := range set.Sorted() {
			assert.True(t, m.Known(), "condition %s maps to unknown mood %s", cond, m)
		}
	}
	for _, band := range temperatureBands {
		for _, m := range band.moods {
			assert.True(t, m.Known(), "temperature band maps to unknown mood %s", m)
		}
	}
}

func TestVocabularyReturnsCopy(t *testing.T) {
	v := Vocabulary()
	v[0], v[len(v)-1] = v[len(v)-1], v[0]

	assert.Equal(t, []Mood{
		Happy, Sad, Energetic, Relaxed, Angry,
		Romantic, Melancholic, Excited, Calm, Nostalgic,
	}, Vocabulary())

	first, ok := NewSet(Nostalgic, Happy).First()
	assert.True(t, ok)
	assert.Equal(t, Happy, first, "priority must not follow a caller's copy")
}
