package components

import (
	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/yohamta/donburi"
)

// AudioSettingsData stores the player's audio preferences (singleton component)
type AudioSettingsData struct {
	MusicVolume float64 `json:"musicVolume"` // 0.0 - 1.0
	SFXVolume   float64 `json:"sfxVolume"`   // 0.0 - 1.0
	Muted       bool    `json:"muted"`

	// For mute restore
	PreMuteMusicVol float64 `json:"preMuteMusicVol"`
	PreMuteSFXVol   float64 `json:"preMuteSfxVol"`
}

func (a *AudioSettingsData) ConfigKey() string { return "audio" }

func (a *AudioSettingsData) ResetToDefaults() {
	*a = AudioSettingsData{
		MusicVolume: cfg.SettingsMenu.DefaultMusicVolume,
		SFXVolume:   cfg.SettingsMenu.DefaultSFXVolume,
	}
}

var AudioSettings = donburi.NewComponentType[AudioSettingsData]()
