package components

import (
	"github.com/automoto/doomerang-settings/settings"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// UserSettings is implemented by every settings owner component.
type UserSettings interface {
	ConfigKey() string
	ResetToDefaults()
}

// SettingsMenuData stores the state of the settings menu overlay
type SettingsMenuData struct {
	Menu            *settings.Menu
	OpenedFromPause bool // Track origin for "Back" navigation

	// Overlay fade, 0 = hidden, 1 = fully shown
	Alpha float32
	Fade  *gween.Tween

	// Last console command output
	ConsoleOutput string
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
