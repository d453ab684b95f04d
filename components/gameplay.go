package components

import (
	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/yohamta/donburi"
)

// GameplaySettingsData stores the local player's profile. It only exists once
// the profile has been loaded, so settings owned by it bind late.
type GameplaySettingsData struct {
	PlayerName string          `json:"playerName"`
	InputMode  cfg.InputModeID `json:"inputMode"`
}

func (g *GameplaySettingsData) ConfigKey() string { return "gameplay" }

func (g *GameplaySettingsData) ResetToDefaults() {
	*g = GameplaySettingsData{
		PlayerName: cfg.SettingsMenu.DefaultPlayerName,
		InputMode:  cfg.InputModeKeyboard,
	}
}

var GameplaySettings = donburi.NewComponentType[GameplaySettingsData]()
