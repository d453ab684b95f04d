package systems

import (
	"github.com/automoto/doomerang-settings/components"
	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/automoto/doomerang-settings/settings"
	"github.com/yohamta/donburi"
)

// Class names used by the settings tables.
const (
	ClassUserSettings     = "UserSettings"
	ClassAudioSettings    = "AudioSettings"
	ClassVideoSettings    = "VideoSettings"
	ClassGameplaySettings = "GameplaySettings"
	ClassSettingsScreen   = "SettingsScreen"
)

// NewSettingsClasses registers every owner type the settings tables may bind to.
func NewSettingsClasses() *settings.ClassRegistry {
	r := settings.NewClassRegistry()

	base := settings.DefineClass[components.UserSettings](r, ClassUserSettings, nil)
	settings.ButtonHandler(base, "ResetToDefaults", components.UserSettings.ResetToDefaults)

	registerAudioClass(r, base)
	registerVideoClass(r, base)
	registerGameplayClass(r, base)
	registerScreenClass(r)
	return r
}

// ownerOf adapts a singleton lookup to an owner function.
func ownerOf[T any](lookup func(donburi.World) *T) func(donburi.World) any {
	return func(w donburi.World) any {
		if v := lookup(w); v != nil {
			return v
		}
		return nil
	}
}

func registerAudioClass(r *settings.ClassRegistry, base *settings.Class) {
	c := settings.DefineClass[*components.AudioSettingsData](r, ClassAudioSettings, base)
	settings.OwnerFunc(c, "Get", ownerOf(AudioSettings))

	settings.FloatGetter(c, "GetMusicVolume", func(a *components.AudioSettingsData) float64 { return a.MusicVolume })
	settings.FloatSetter(c, "SetMusicVolume", func(a *components.AudioSettingsData, v float64) {
		a.MusicVolume = v
		unmuteOnChange(a, v)
	})
	settings.FloatGetter(c, "GetSFXVolume", func(a *components.AudioSettingsData) float64 { return a.SFXVolume })
	settings.FloatSetter(c, "SetSFXVolume", func(a *components.AudioSettingsData, v float64) {
		a.SFXVolume = v
		unmuteOnChange(a, v)
	})
	settings.BoolGetter(c, "IsMuted", func(a *components.AudioSettingsData) bool { return a.Muted })
	settings.BoolSetter(c, "SetMuted", setMuted)
}

// setMuted silences both channels, remembering the volumes to restore.
func setMuted(a *components.AudioSettingsData, muted bool) {
	if muted == a.Muted {
		return
	}
	a.Muted = muted
	if muted {
		a.PreMuteMusicVol = a.MusicVolume
		a.PreMuteSFXVol = a.SFXVolume
		a.MusicVolume = 0
		a.SFXVolume = 0
		return
	}
	a.MusicVolume = a.PreMuteMusicVol
	a.SFXVolume = a.PreMuteSFXVol
}

func unmuteOnChange(a *components.AudioSettingsData, v float64) {
	if a.Muted && v > 0 {
		a.Muted = false
	}
}

func registerVideoClass(r *settings.ClassRegistry, base *settings.Class) {
	c := settings.DefineClass[*components.VideoSettingsData](r, ClassVideoSettings, base)
	settings.OwnerFunc(c, "Get", ownerOf(VideoSettings))

	settings.BoolGetter(c, "IsFullscreen", func(v *components.VideoSettingsData) bool { return v.Fullscreen })
	settings.BoolSetter(c, "SetFullscreen", func(v *components.VideoSettingsData, on bool) { v.Fullscreen = on })
	settings.BoolGetter(c, "IsVSyncEnabled", func(v *components.VideoSettingsData) bool { return v.VSync })
	settings.BoolSetter(c, "SetVSyncEnabled", func(v *components.VideoSettingsData, on bool) { v.VSync = on })

	settings.MembersGetter(c, "GetResolutions", func(*components.VideoSettingsData) []string {
		labels := make([]string, len(cfg.SettingsMenu.Resolutions))
		for i, res := range cfg.SettingsMenu.Resolutions {
			labels[i] = res.Label
		}
		return labels
	})
	settings.IntGetter(c, "GetResolution", func(v *components.VideoSettingsData) int { return v.ResolutionIndex })
	settings.IntSetter(c, "SetResolution", func(v *components.VideoSettingsData, i int) {
		if i >= 0 && i < len(cfg.SettingsMenu.Resolutions) {
			v.ResolutionIndex = i
		}
	})

	settings.MembersGetter(c, "GetQualityLevels", func(*components.VideoSettingsData) []string {
		return append([]string(nil), cfg.SettingsMenu.QualityLevels...)
	})
	settings.MembersGetter(c, "GetDetailLevels", func(*components.VideoSettingsData) []string {
		return append([]string(nil), cfg.SettingsMenu.QualityLevels[:cfg.QualityCustom]...)
	})
	settings.IntGetter(c, "GetQuality", func(v *components.VideoSettingsData) int { return int(v.Quality) })
	settings.IntSetter(c, "SetQuality", func(v *components.VideoSettingsData, i int) { setQualityPreset(v, cfg.QualityID(i)) })
	settings.IntGetter(c, "GetShadowQuality", func(v *components.VideoSettingsData) int { return int(v.ShadowQuality) })
	settings.IntSetter(c, "SetShadowQuality", func(v *components.VideoSettingsData, i int) {
		v.ShadowQuality = clampDetail(i)
		v.Quality = presetOf(v)
	})
	settings.IntGetter(c, "GetTextureQuality", func(v *components.VideoSettingsData) int { return int(v.TextureQuality) })
	settings.IntSetter(c, "SetTextureQuality", func(v *components.VideoSettingsData, i int) {
		v.TextureQuality = clampDetail(i)
		v.Quality = presetOf(v)
	})

	settings.FloatGetter(c, "GetBrightness", func(v *components.VideoSettingsData) float64 { return v.Brightness })
	settings.FloatSetter(c, "SetBrightness", func(v *components.VideoSettingsData, b float64) { v.Brightness = b })
}

// setQualityPreset applies a preset to every detail level. Custom keeps the details.
func setQualityPreset(v *components.VideoSettingsData, q cfg.QualityID) {
	if q < 0 || q > cfg.QualityCustom {
		return
	}
	v.Quality = q
	if q == cfg.QualityCustom {
		return
	}
	v.ShadowQuality = q
	v.TextureQuality = q
}

func clampDetail(i int) cfg.QualityID {
	return cfg.QualityID(min(max(i, int(cfg.QualityLow)), int(cfg.QualityEpic)))
}

// presetOf returns the preset matching the detail levels, or Custom.
func presetOf(v *components.VideoSettingsData) cfg.QualityID {
	if v.ShadowQuality == v.TextureQuality {
		return v.ShadowQuality
	}
	return cfg.QualityCustom
}

func registerGameplayClass(r *settings.ClassRegistry, base *settings.Class) {
	c := settings.DefineClass[*components.GameplaySettingsData](r, ClassGameplaySettings, base)
	settings.OwnerFunc(c, "Get", ownerOf(GameplaySettings))

	settings.NameGetter(c, "GetPlayerName", func(g *components.GameplaySettingsData) string { return g.PlayerName })
	settings.NameSetter(c, "SetPlayerName", func(g *components.GameplaySettingsData, name string) { g.PlayerName = name })

	settings.MembersGetter(c, "GetInputModes", func(*components.GameplaySettingsData) []string {
		return append([]string(nil), cfg.SettingsMenu.InputModes...)
	})
	settings.IntGetter(c, "GetInputMode", func(g *components.GameplaySettingsData) int { return int(g.InputMode) })
	settings.IntSetter(c, "SetInputMode", func(g *components.GameplaySettingsData, i int) {
		if i >= 0 && i < len(cfg.SettingsMenu.InputModes) {
			g.InputMode = cfg.InputModeID(i)
		}
	})
}

// registerScreenClass exposes the settings screen itself for header and footer rows.
func registerScreenClass(r *settings.ClassRegistry) {
	c := settings.DefineClass[*components.SettingsMenuData](r, ClassSettingsScreen, nil)
	settings.OwnerFunc(c, "Get", ownerOf(func(w donburi.World) *components.SettingsMenuData {
		return first(w, components.SettingsMenu)
	}))

	settings.ButtonHandler(c, "Close", func(s *components.SettingsMenuData) {
		if s.Menu != nil {
			s.Menu.Close()
		}
	})
	settings.ButtonHandler(c, "ResetAll", func(s *components.SettingsMenuData) {
		if s.Menu != nil {
			ResetAllSettings(s.Menu.World())
		}
	})
	settings.TextGetter(c, "GetMessageOfTheDay", func(*components.SettingsMenuData) string {
		return cfg.SettingsMenu.MessageOfTheDay
	})
}
