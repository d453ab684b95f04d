package ui

import "github.com/hajimehoshi/ebiten/v2"

// EbitenDisplay applies video settings to the game window.
type EbitenDisplay struct{}

func (EbitenDisplay) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}

func (EbitenDisplay) SetVsyncEnabled(enabled bool) {
	ebiten.SetVsyncEnabled(enabled)
}

func (EbitenDisplay) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}
