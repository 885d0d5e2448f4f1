// Package mood maps weather observations to moods and reconciles them with a
// mood stated by the user.
package mood

import (
	"slices"
	"strings"
)

// Mood is a label from the mood vocabulary.
type Mood string

// The mood vocabulary.
const (
	Happy       Mood = "happy"
	Sad         Mood = "sad"
	Energetic   Mood = "energetic"
	Relaxed     Mood = "relaxed"
	Angry       Mood = "angry"
	Romantic    Mood = "romantic"
	Melancholic Mood = "melancholic"
	Excited     Mood = "excited"
	Calm        Mood = "calm"
	Nostalgic   Mood = "nostalgic"
)

// DefaultMood is used when no weather-derived mood is available.
const DefaultMood = Relaxed

// vocabulary lists every known mood. Its order is the selection priority used
// by Derive and Suggested: earlier entries win.
var vocabulary = []Mood{
	Happy,
	Sad,
	Energetic,
	Relaxed,
	Angry,
	Romantic,
	Melancholic,
	Excited,
	Calm,
	Nostalgic,
}

// priority maps each vocabulary mood to its index in vocabulary.
var priority = func() map[Mood]int {
	m := make(map[Mood]int, len(vocabulary))
	for i, v := range vocabulary {
		m[v] = i
	}
	return m
}()

// Vocabulary returns every known mood in priority order. The slice is a copy.
func Vocabulary() []Mood {
	return slices.Clone(vocabulary)
}

// Normalize lower-cases and trims a free-text mood.
func Normalize(s string) Mood {
	return Mood(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether m is part of the vocabulary.
func (m Mood) Known() bool {
	_, ok := priority[m]
	return ok
}

// Set is an immutable set of moods.
type Set struct {
	members map[Mood]struct{}
}

// NewSet builds a set from the given moods. Duplicates are collapsed.
func NewSet(moods ...Mood) Set {
	members := make(map[Mood]struct{}, len(moods))
	for _, m := range moods {
		members[m] = struct{}{}
	}
	return Set{members: members}
}

// Has reports whether m is in the set.
func (s Set) Has(m Mood) bool {
	_, ok := s.members[m]
	return ok
}

// Len returns the number of moods in the set.
func (s Set) Len() int {
	return len(s.members)
}

// Union returns a new set holding the moods of s and other.
func (s Set) Union(other Set) Set {
	members := make(map[Mood]struct{}, len(s.members)+len(other.members))
	for m := range s.members {
		members[m] = struct{}{}
	}
	for m := range other.members {
		members[m] = struct{}{}
	}
	return Set{members: members}
}

// Sorted returns the members in vocabulary order. Moods outside the
// vocabulary sort last, alphabetically.
func (s Set) Sorted() []Mood {
	out := make([]Mood, 0, len(s.members))
	for _, m := range vocabulary {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	if len(out) == len(s.members) {
		return out
	}

	var extra []Mood
	for m := range s.members {
		if !m.Known() {
			extra = append(extra, m)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}

// Strings returns the members in vocabulary order as plain strings.
func (s Set) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, m := range sorted {
		out[i] = string(m)
	}
	return out
}

// First returns the highest-priority member, or false for an empty set.
func (s Set) First() (Mood, bool) {
	for _, m := range vocabulary {
		if s.Has(m) {
			return m, true
		}
	}
	return "", false
}
