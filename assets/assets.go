package assets

import (
	"embed"
	"io/fs"

	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/automoto/doomerang-settings/settings"
)

var (
	//go:embed all:settings
	settingsFS embed.FS
)

// SettingsFS returns the embedded settings tables.
func SettingsFS() fs.FS {
	return settingsFS
}

// SettingsSource reads the tables listed in config.SettingsMenu.Tables.
func SettingsSource() settings.Source {
	return settings.YAMLSource{FS: settingsFS, Paths: cfg.SettingsMenu.Tables}
}
