package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	assert.True(t, New("Settings.Checkbox.VSync").IsValid())
	assert.Equal(t, New("Settings.Checkbox.VSync"), New("Settings.Checkbox.VSync"))
	assert.NotEqual(t, New("Settings.A"), New("Settings.B"))

	for _, bad := range []string{"", ".", "A..B", "A.", ".A", "A B", "A,B"} {
		assert.False(t, New(bad).IsValid(), "%q should be rejected", bad)
		assert.Equal(t, None, New(bad))
	}

	assert.False(t, None.IsValid())
	assert.Equal(t, "", None.Name())
	assert.Equal(t, "None", None.String())
}

func TestParent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, New("A.B"), New("A.B.C").Parent())
	assert.Equal(t, None, New("A").Parent())
	assert.Equal(t, None, None.Parent())
}

func TestMatches(t *testing.T) {
	t.Parallel()

	vsync := New("Settings.Video.VSync")
	assert.True(t, vsync.Matches(vsync))
	assert.True(t, vsync.Matches(New("Settings.Video")))
	assert.True(t, vsync.Matches(New("Settings")))
	assert.False(t, New("Settings.Video").Matches(vsync))
	assert.False(t, New("Settings.VideoExtra").Matches(New("Settings.Video")))
	assert.False(t, vsync.Matches(None))
	assert.False(t, None.Matches(vsync))

	assert.True(t, vsync.MatchesAny(NewSet(New("Settings.Audio"), New("Settings.Video"))))
	assert.False(t, vsync.MatchesAny(NewSet(New("Settings.Audio"))))
	assert.False(t, vsync.MatchesAny(nil))
}

func TestSet(t *testing.T) {
	t.Parallel()

	a, b, c := New("A"), New("B"), New("C")

	s := NewSet(a, b, None, a)
	assert.Equal(t, []Tag{a, b}, s.Tags())
	assert.True(t, s.Add(c))
	assert.False(t, s.Add(c))

	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	assert.Equal(t, []Tag{b, c}, s.Tags())
	assert.True(t, s.Has(c))
	assert.False(t, s.Has(a))

	s.RemoveAll(NewSet(b))
	assert.Equal(t, []Tag{c}, s.Tags())
	assert.Equal(t, "(C)", s.String())

	clone := s.Clone()
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 1, clone.Len())

	var zero Set
	assert.True(t, zero.Add(a))
	assert.Equal(t, 1, zero.Len())

	var nilSet *Set
	assert.Equal(t, 0, nilSet.Len())
	assert.False(t, nilSet.Has(a))

	assert.Equal(t, []Tag{a, c}, ParseSet("A", "", "C").Tags())
}
