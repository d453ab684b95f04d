package settings

import (
	"testing"

	"github.com/automoto/doomerang-settings/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSetting(t *testing.T, tag string, v Value) *Setting {
	t.Helper()
	s, err := NewSetting(Primary{Tag: tags.New(tag)}, v)
	require.NoError(t, err)
	return s
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	a := mustSetting(t, "Settings.Video.VSync", NewCheckbox())
	b := mustSetting(t, "Settings.Video.Fullscreen", NewCheckbox())
	c := mustSetting(t, "Settings.Audio.Music", NewSlider())

	assert.True(t, r.Add(a))
	assert.True(t, r.Add(b))
	assert.True(t, r.Add(c))
	assert.Equal(t, 3, r.Len())

	got, ok := r.Find(tags.New("Settings.Video.Fullscreen"))
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = r.Find(tags.None)
	assert.False(t, ok)

	got, ok = r.FindBySubstring("Video")
	require.True(t, ok)
	assert.Same(t, a, got, "first match in insertion order")

	_, ok = r.FindBySubstring("")
	assert.False(t, ok)
	_, ok = r.FindBySubstring("Gameplay")
	assert.False(t, ok)

	// Duplicates replace in place.
	a2 := mustSetting(t, "Settings.Video.VSync", NewCheckbox())
	assert.True(t, r.Add(a2))
	assert.Equal(t, 3, r.Len())
	assert.Same(t, a2, r.Settings()[0])

	assert.Equal(t, "(Settings.Video.VSync,Settings.Video.Fullscreen,Settings.Audio.Music)", r.Tags().String())

	var visited int
	r.ForEach(func(*Setting) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)

	r.Clear()
	assert.Equal(t, 0, r.Len())
	_, ok = r.Find(a.Tag())
	assert.False(t, ok)
}

func TestRegistryRefusesInvalidTag(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.False(t, r.Add(nil))
	assert.False(t, r.Add(&Setting{Value: NewCheckbox()}))
	assert.Equal(t, 0, r.Len())
}

func TestNewSetting(t *testing.T) {
	t.Parallel()

	_, err := NewSetting(Primary{}, NewCheckbox())
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = NewSetting(Primary{Tag: tags.New("A")}, nil)
	assert.ErrorIs(t, err, ErrAmbiguousValue)

	var nilBox *Checkbox
	_, err = NewSetting(Primary{Tag: tags.New("A")}, nilBox)
	assert.ErrorIs(t, err, ErrAmbiguousValue)

	s, err := NewSetting(Primary{Tag: tags.New("A")}, NewCheckbox())
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultLineHeight), s.Primary.Layout.LineHeight)
	assert.NotNil(t, s.Primary.SettingsToUpdate)
	assert.Equal(t, KindCheckbox, s.Kind())
	assert.Equal(t, "checkbox(A)", s.String())
}
