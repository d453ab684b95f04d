package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/doomerang-settings/assets"
	"github.com/automoto/doomerang-settings/config"
	"github.com/automoto/doomerang-settings/fonts"
	"github.com/automoto/doomerang-settings/scenes"
	"github.com/automoto/doomerang-settings/settings"
	"github.com/automoto/doomerang-settings/systems"
	"github.com/automoto/doomerang-settings/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewSettingsScene(g)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// validateSettings checks the embedded tables before anything is shown.
func validateSettings() {
	tables, err := assets.SettingsSource().Tables()
	if err != nil {
		log.Fatalf("Failed to read settings tables: %v", err)
	}
	if errs := settings.Validate(tables, systems.NewSettingsClasses()); errs != nil {
		if config.Debug.StrictSettings {
			log.Fatalf("Broken settings tables: %v", errs)
		}
		log.Printf("Warning: %v", errs)
	}
}

func main() {
	flag.BoolVar(&config.Debug.StrictSettings, "strict", config.Debug.StrictSettings, "Panic on broken settings tables")
	flag.BoolVar(&config.Debug.ValidateOnBoot, "validate", config.Debug.ValidateOnBoot, "Validate settings tables on startup")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Doomerang Settings")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if config.Debug.ValidateOnBoot {
		validateSettings()
	}

	// Initialize persistence; without it settings live for this run only
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.SetDisplay(ui.EbitenDisplay{})

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
