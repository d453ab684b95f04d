package scenes

import (
	"image/color"
	"strings"
	"sync"

	"github.com/automoto/doomerang-settings/assets"
	"github.com/automoto/doomerang-settings/components"
	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/automoto/doomerang-settings/fonts"
	"github.com/automoto/doomerang-settings/settings"
	"github.com/automoto/doomerang-settings/systems"
	"github.com/automoto/doomerang-settings/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SettingsScene shows the settings menu over a plain backdrop, with a
// console for driving settings by name.
type SettingsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	store    *systems.ConfigStore
	ui       *ui.SettingsUI
	screen   *components.SettingsMenuData
	overlay  *ebiten.Image
	frames   int
	profiled bool
}

// NewSettingsScene creates a new settings scene
func NewSettingsScene(sc SceneChanger) *SettingsScene {
	return &SettingsScene{sceneChanger: sc}
}

func (ss *SettingsScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *SettingsScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SettingsScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())
	ss.store = systems.DefaultConfigStore()

	systems.SpawnSettingsOwners(ss.ecs.World, ss.store)

	ss.ui = ui.NewSettingsUI()
	ss.screen = systems.NewSettingsMenu(ss.ecs.World, assets.SettingsSource(), ss.store,
		settings.WithWidgetFactory(ss.ui),
	)
	ss.ui.Attach(ss.screen.Menu)
	systems.ApplyVideoSettings(ss.ecs.World, ui.EbitenDisplay{})
	systems.OpenSettings(ss.ecs.World, false)

	ss.ecs.AddSystem(updateInput)
	ss.ecs.AddSystem(ss.updateProfile)
	ss.ecs.AddSystem(ss.updateSettings)
	ss.ecs.AddSystem(ss.updateConsole)

	ss.ecs.AddRenderer(layerDefault, ss.drawBackdrop)
	ss.ecs.AddRenderer(layerDefault, ss.drawSettings)
	ss.ecs.AddRenderer(layerDefault, ss.drawConsole)
}

// updateProfile spawns the player profile a little after start. Its settings
// stay deferred until then.
func (ss *SettingsScene) updateProfile(e *ecs.ECS) {
	if ss.profiled {
		return
	}
	ss.frames++
	if ss.frames < cfg.SettingsMenu.ProfileDelayFrames {
		return
	}
	ss.profiled = true
	systems.SpawnGameplaySettings(e.World, ss.store)
	ss.screen.Menu.RetryDeferred()
	ss.ui.UpdateUI()
}

func (ss *SettingsScene) updateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if input.ConsoleLine == nil && getAction(input, cfg.ActionPause).JustPressed {
		systems.ToggleSettings(e.World)
	}

	systems.UpdateSettingsFade(e.World, 1/float32(ebiten.TPS()))

	if systems.IsSettingsOpen(e.World) {
		ss.ui.Update()
	}
}

func (ss *SettingsScene) updateConsole(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if getAction(input, cfg.ActionConsole).JustPressed {
		if input.ConsoleLine == nil {
			input.ConsoleLine = new(string)
		} else {
			input.ConsoleLine = nil
		}
		return
	}
	if input.ConsoleLine == nil {
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r == '`' {
			continue
		}
		*input.ConsoleLine += string(r)
	}

	if getAction(input, cfg.ActionConsoleErase).JustPressed && *input.ConsoleLine != "" {
		line := []rune(*input.ConsoleLine)
		*input.ConsoleLine = string(line[:len(line)-1])
	}

	if getAction(input, cfg.ActionConsoleSubmit).JustPressed {
		// The command output lands in the settings screen either way.
		_, _ = systems.RunSettingsCommand(e.World, *input.ConsoleLine)
		*input.ConsoleLine = ""
		ss.ui.UpdateUI()
	}
}

func (ss *SettingsScene) drawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	v := systems.VideoSettings(e.World)
	if v == nil {
		return
	}

	// 0.5 is neutral. Darker values dim the screen, brighter ones wash it out.
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	if v.Brightness < 0.5 {
		a := uint8((0.5 - v.Brightness) * 2 * 200)
		vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{A: a}, false)
	} else if v.Brightness > 0.5 {
		a := uint8((v.Brightness - 0.5) * 2 * 60)
		vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{R: a, G: a, B: a, A: a}, false)
	}
}

func (ss *SettingsScene) drawSettings(e *ecs.ECS, screen *ebiten.Image) {
	if ss.screen.Alpha <= 0 {
		text.Draw(screen, "Press Esc for settings", fonts.Hint.Get(), 8, cfg.C.Height-8, cfg.Menu.TooltipColor)
		return
	}

	if ss.overlay == nil {
		ss.overlay = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
	}
	ss.overlay.Clear()
	ss.ui.UI.Draw(ss.overlay)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(ss.screen.Alpha)
	screen.DrawImage(ss.overlay, op)
}

func (ss *SettingsScene) drawConsole(e *ecs.ECS, screen *ebiten.Image) {
	input := getOrCreateInput(e)
	if input.ConsoleLine == nil {
		return
	}

	lines := strings.Split(ss.screen.ConsoleOutput, "\n")
	if len(lines) > cfg.Console.MaxLines {
		lines = lines[len(lines)-cfg.Console.MaxLines:]
	}
	lines = append(lines, "> "+*input.ConsoleLine+"_")

	h := len(lines)*cfg.Console.LineHeight + 6
	top := cfg.C.Height - h
	vector.DrawFilledRect(screen, 0, float32(top), float32(cfg.C.Width), float32(h), cfg.BlackOverlay, false)

	face := fonts.Console.Get()
	for i, line := range lines {
		y := top + (i+1)*cfg.Console.LineHeight
		text.Draw(screen, line, face, 6, y, cfg.Menu.TextColorNormal)
	}
}
