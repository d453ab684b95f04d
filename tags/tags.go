package tags

import (
	"strings"
	"unique"
)

// Tag is an interned, dot-separated setting identifier such as "Settings.Checkbox.VSync".
// The zero value is None and never equals a real tag.
type Tag struct {
	h unique.Handle[string]
}

// None is the empty tag.
var None Tag

// New interns name as a Tag. Malformed names (empty segments, whitespace) yield None.
func New(name string) Tag {
	if !validName(name) {
		return None
	}
	return Tag{h: unique.Make(name)}
}

func validName(name string) bool {
	if name == "" || strings.ContainsAny(name, " \t\r\n,") {
		return false
	}
	for _, seg := range strings.Split(name, ".") {
		if seg == "" {
			return false
		}
	}
	return true
}

// IsValid reports whether t is a real tag.
func (t Tag) IsValid() bool {
	return t != None
}

// Name returns the tag string, or "" for None.
func (t Tag) Name() string {
	if !t.IsValid() {
		return ""
	}
	return t.h.Value()
}

func (t Tag) String() string {
	if !t.IsValid() {
		return "None"
	}
	return t.h.Value()
}

// Parent returns the enclosing tag ("A.B" for "A.B.C"), or None for a root tag.
func (t Tag) Parent() Tag {
	name := t.Name()
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return None
	}
	return New(name[:i])
}

// Matches reports whether t equals q or is a descendant of q.
// "Settings.Video.VSync" matches "Settings.Video" but not the other way round.
func (t Tag) Matches(q Tag) bool {
	if !t.IsValid() || !q.IsValid() {
		return false
	}
	if t == q {
		return true
	}
	name, query := t.Name(), q.Name()
	return len(name) > len(query) && strings.HasPrefix(name, query) && name[len(query)] == '.'
}

// MatchesAny reports whether t matches at least one tag of set.
func (t Tag) MatchesAny(set *Set) bool {
	if set == nil {
		return false
	}
	for _, q := range set.order {
		if t.Matches(q) {
			return true
		}
	}
	return false
}

// Setting tags used by the game's settings tables.
var (
	Settings = New("Settings")

	Audio       = New("Settings.Audio")
	MusicVolume = New("Settings.Audio.MusicVolume")
	SFXVolume   = New("Settings.Audio.SFXVolume")
	Mute        = New("Settings.Audio.Mute")

	Video          = New("Settings.Video")
	Fullscreen     = New("Settings.Video.Fullscreen")
	VSync          = New("Settings.Video.VSync")
	Resolution     = New("Settings.Video.Resolution")
	Quality        = New("Settings.Video.Quality")
	ShadowQuality  = New("Settings.Video.ShadowQuality")
	TextureQuality = New("Settings.Video.TextureQuality")
	Brightness     = New("Settings.Video.Brightness")
	VideoReset     = New("Settings.Video.Reset")

	Gameplay   = New("Settings.Gameplay")
	PlayerName = New("Settings.Gameplay.PlayerName")
	InputMode  = New("Settings.Gameplay.InputMode")
	MOTD       = New("Settings.Gameplay.MOTD")

	Title = New("Settings.Header.Title")
	Reset = New("Settings.Footer.Reset")
	Back  = New("Settings.Footer.Back")
)
