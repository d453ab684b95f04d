package config

import "time"

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// InputModeID represents the input mode
type InputModeID int

const (
	InputModeKeyboard InputModeID = iota
	InputModeController
)

// QualityID is a graphics quality preset
type QualityID int

const (
	QualityLow QualityID = iota
	QualityMedium
	QualityHigh
	QualityEpic
	QualityCustom // Shadows and textures no longer match one preset
)

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	VolumeSteps            []float64
	InputModes             []string
	QualityLevels          []string // Indexed by QualityID
	DefaultQuality         QualityID
	DefaultMusicVolume     float64
	DefaultSFXVolume       float64
	DefaultBrightness      float64
	DefaultPlayerName      string
	MaxPlayerNameChars     int
	MessageOfTheDay        string

	// Tables are read from the embedded assets in this order
	Tables []string

	FadeDuration time.Duration

	// The player profile spawns this many frames after the scene starts,
	// like a profile that arrives from an online service.
	ProfileDelayFrames int
}

// PersistenceConfig contains where settings are stored
type PersistenceConfig struct {
	AppName string
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

// Persistence is the global persistence configuration
var Persistence PersistenceConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
		},
		DefaultResolutionIndex: 0,
		VolumeSteps:            []float64{0, 0.25, 0.5, 0.75, 1.0},
		InputModes:             []string{"Keyboard", "Controller"},
		QualityLevels:          []string{"Low", "Medium", "High", "Epic", "Custom"},
		DefaultQuality:         QualityHigh,
		DefaultMusicVolume:     0.75,
		DefaultSFXVolume:       0.75,
		DefaultBrightness:      0.5,
		DefaultPlayerName:      "Player",
		MaxPlayerNameChars:     12,
		MessageOfTheDay:        "Welcome to Doomerang!",
		Tables: []string{
			"settings/header.yaml",
			"settings/video.yaml",
			"settings/audio.yaml",
			"settings/gameplay.yaml",
			"settings/footer.yaml",
		},
		FadeDuration:       250 * time.Millisecond,
		ProfileDelayFrames: 30,
	}

	Persistence = PersistenceConfig{
		AppName: "doomerang",
	}
}
