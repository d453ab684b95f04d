package components

import (
	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/yohamta/donburi"
)

// VideoSettingsData stores display and graphics preferences (singleton component)
type VideoSettingsData struct {
	Fullscreen      bool          `json:"fullscreen"`
	VSync           bool          `json:"vsync"`
	ResolutionIndex int           `json:"resolutionIndex"`
	Quality         cfg.QualityID `json:"quality"`
	ShadowQuality   cfg.QualityID `json:"shadowQuality"`
	TextureQuality  cfg.QualityID `json:"textureQuality"`
	Brightness      float64       `json:"brightness"` // 0.0 - 1.0
}

func (v *VideoSettingsData) ConfigKey() string { return "video" }

func (v *VideoSettingsData) ResetToDefaults() {
	q := cfg.SettingsMenu.DefaultQuality
	*v = VideoSettingsData{
		VSync:           true,
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		Quality:         q,
		ShadowQuality:   q,
		TextureQuality:  q,
		Brightness:      cfg.SettingsMenu.DefaultBrightness,
	}
}

var VideoSettings = donburi.NewComponentType[VideoSettingsData]()
