package systems

import (
	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/yohamta/donburi"
)

// Display is the window the video settings are applied to.
type Display interface {
	SetFullscreen(fullscreen bool)
	SetVsyncEnabled(enabled bool)
	SetWindowSize(width, height int)
}

type nopDisplay struct{}

func (nopDisplay) SetFullscreen(bool)     {}
func (nopDisplay) SetVsyncEnabled(bool)   {}
func (nopDisplay) SetWindowSize(int, int) {}

var display Display = nopDisplay{}

// SetDisplay sets the display used by menus created afterwards.
func SetDisplay(d Display) {
	if d == nil {
		d = nopDisplay{}
	}
	display = d
}

// SettingsApplier applies the video settings of a world to a display.
type SettingsApplier struct {
	World   donburi.World
	Display Display
}

func (a SettingsApplier) ApplySettings() {
	ApplyVideoSettings(a.World, a.Display)
}

// ApplyVideoSettings pushes the video settings to d.
func ApplyVideoSettings(w donburi.World, d Display) {
	v := VideoSettings(w)
	if v == nil || d == nil {
		return
	}

	d.SetFullscreen(v.Fullscreen)
	d.SetVsyncEnabled(v.VSync)

	// Apply resolution (only if not fullscreen)
	if !v.Fullscreen && v.ResolutionIndex >= 0 && v.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[v.ResolutionIndex]
		d.SetWindowSize(res.Width, res.Height)
	}
}
