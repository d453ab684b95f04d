package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// MenuConfig contains menu colors and spacing shared by the settings screen
type MenuConfig struct {
	BackgroundColor   color.RGBA
	PanelColor        color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorDisabled color.RGBA
	TooltipColor      color.RGBA
	TitleY            float64
	ColumnWidth       int
	ColumnGap         int
	RowGap            int
	ValueWidth        int
	LineHeightScale   float64 // Table line heights are authored for a 1080p screen
}

// ConsoleConfig contains the settings console layout
type ConsoleConfig struct {
	MaxLines   int // Output lines shown above the prompt
	LineHeight int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StrictSettings bool // Panic on broken settings tables instead of logging
	ValidateOnBoot bool // Validate settings tables before the first frame
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var Console ConsoleConfig
var Debug DebugConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		PanelColor:        color.RGBA{R: 30, G: 30, B: 40, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TextColorDisabled: Gray,
		TooltipColor:      LightBlue,
		TitleY:            35,
		ColumnWidth:       280,
		ColumnGap:         16,
		RowGap:            3,
		ValueWidth:        110,
		LineHeightScale:   0.4,
	}

	Console = ConsoleConfig{
		MaxLines:   8,
		LineHeight: 12,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		StrictSettings: false,
		ValidateOnBoot: true,
	}
}
