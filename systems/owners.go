package systems

import (
	"log"

	"github.com/automoto/doomerang-settings/components"
	"github.com/yohamta/donburi"
)

// AudioSettings returns the audio settings singleton, or nil before it is spawned.
func AudioSettings(w donburi.World) *components.AudioSettingsData {
	return first(w, components.AudioSettings)
}

// VideoSettings returns the video settings singleton, or nil before it is spawned.
func VideoSettings(w donburi.World) *components.VideoSettingsData {
	return first(w, components.VideoSettings)
}

// GameplaySettings returns the player profile, or nil until SpawnGameplaySettings ran.
func GameplaySettings(w donburi.World) *components.GameplaySettingsData {
	return first(w, components.GameplaySettings)
}

func first[T any](w donburi.World, ct *donburi.ComponentType[T]) *T {
	if entry, ok := ct.First(w); ok {
		return ct.Get(entry)
	}
	return nil
}

// SpawnSettingsOwners creates the audio and video settings singletons and loads
// their saved values.
func SpawnSettingsOwners(w donburi.World, store *ConfigStore) {
	spawnOwner(w, components.AudioSettings, store)
	spawnOwner(w, components.VideoSettings, store)
}

// SpawnGameplaySettings creates the player profile. Settings owned by it bind
// the next time the menu opens.
func SpawnGameplaySettings(w donburi.World, store *ConfigStore) *components.GameplaySettingsData {
	return spawnOwner(w, components.GameplaySettings, store)
}

func spawnOwner[T any, PT interface {
	*T
	components.UserSettings
}](w donburi.World, ct *donburi.ComponentType[T], store *ConfigStore) *T {
	if data := first(w, ct); data != nil {
		return data
	}

	data := ct.Get(w.Entry(w.Create(ct)))
	PT(data).ResetToDefaults()
	if err := store.LoadForInstance(PT(data)); err != nil {
		log.Printf("Warning: Could not load %s settings, using defaults", PT(data).ConfigKey())
		PT(data).ResetToDefaults()
	}
	return data
}

// ResetAllSettings restores every spawned owner to its defaults.
func ResetAllSettings(w donburi.World) {
	if a := AudioSettings(w); a != nil {
		a.ResetToDefaults()
	}
	if v := VideoSettings(w); v != nil {
		v.ResetToDefaults()
	}
	if g := GameplaySettings(w); g != nil {
		g.ResetToDefaults()
	}
}
