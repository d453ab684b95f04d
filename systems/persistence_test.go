package systems

import (
	"encoding/json"
	"testing"

	"github.com/automoto/doomerang-settings/components"
	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestConfigStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewConfigStore(newMemItems())

	saved := &components.VideoSettingsData{}
	saved.ResetToDefaults()
	saved.Fullscreen = true
	saved.ShadowQuality = cfg.QualityLow
	require.NoError(t, store.SaveForInstance(saved))

	loaded := &components.VideoSettingsData{}
	require.NoError(t, store.LoadForInstance(loaded))
	assert.Equal(t, *saved, *loaded)
}

func TestConfigStoreMissingItemKeepsValues(t *testing.T) {
	t.Parallel()

	store := NewConfigStore(newMemItems())
	a := &components.AudioSettingsData{}
	a.ResetToDefaults()

	require.NoError(t, store.LoadForInstance(a))
	assert.Equal(t, cfg.SettingsMenu.DefaultMusicVolume, a.MusicVolume)
}

func TestConfigStoreErrors(t *testing.T) {
	t.Parallel()

	items := newMemItems()
	items.data["audio"] = []byte("{not json")
	store := NewConfigStore(items)
	assert.Error(t, store.LoadForInstance(&components.AudioSettingsData{}))

	items.loadErr = errDisk
	assert.ErrorIs(t, store.LoadForInstance(&components.AudioSettingsData{}), errDisk)
}

func TestConfigStoreIgnoresOtherOwners(t *testing.T) {
	t.Parallel()

	items := newMemItems()
	store := NewConfigStore(items)
	assert.NoError(t, store.SaveForInstance(&components.SettingsMenuData{}))
	assert.NoError(t, store.LoadForInstance(&components.SettingsMenuData{}))
	assert.Empty(t, items.data)

	var none *ConfigStore
	assert.NoError(t, none.SaveForInstance(&components.AudioSettingsData{}))
	assert.NoError(t, none.LoadForInstance(&components.AudioSettingsData{}))
}

func TestSpawnOwnerLoadsSavedValues(t *testing.T) {
	t.Parallel()

	items := newMemItems()
	data, err := json.Marshal(components.AudioSettingsData{MusicVolume: 0.2, SFXVolume: 0.4})
	require.NoError(t, err)
	items.data["audio"] = data

	w := donburi.NewWorld()
	SpawnSettingsOwners(w, NewConfigStore(items))

	a := AudioSettings(w)
	require.NotNil(t, a)
	assert.Equal(t, 0.2, a.MusicVolume)
	assert.Equal(t, 0.4, a.SFXVolume)

	v := VideoSettings(w)
	require.NotNil(t, v)
	assert.Equal(t, cfg.SettingsMenu.DefaultQuality, v.Quality)
	assert.True(t, v.VSync)

	assert.Nil(t, GameplaySettings(w))

	// Spawning again keeps the existing singleton.
	SpawnSettingsOwners(w, nil)
	assert.Same(t, a, AudioSettings(w))
}

func TestSpawnOwnerFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	items := newMemItems()
	items.data["gameplay"] = []byte(`{"playerName": 7}`)

	w := donburi.NewWorld()
	g := SpawnGameplaySettings(w, NewConfigStore(items))
	require.NotNil(t, g)
	assert.Equal(t, cfg.SettingsMenu.DefaultPlayerName, g.PlayerName)
	assert.Equal(t, cfg.InputModeKeyboard, g.InputMode)
}
