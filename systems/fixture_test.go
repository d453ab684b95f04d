package systems

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-settings/assets"
	"github.com/automoto/doomerang-settings/components"
	"github.com/automoto/doomerang-settings/settings"
	"github.com/yohamta/donburi"
)

// memItems is an in-memory gdata item store.
type memItems struct {
	data    map[string][]byte
	loadErr error
}

func newMemItems() *memItems {
	return &memItems{data: make(map[string][]byte)}
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	m.data[key] = append([]byte(nil), data...)
	return nil
}

var errDisk = errors.New("disk on fire")

// recordingDisplay remembers the last values applied to it.
type recordingDisplay struct {
	fullscreen    bool
	vsync         bool
	width, height int
	sizeCalls     int
}

func (d *recordingDisplay) SetFullscreen(on bool)   { d.fullscreen = on }
func (d *recordingDisplay) SetVsyncEnabled(on bool) { d.vsync = on }
func (d *recordingDisplay) SetWindowSize(w, h int) {
	d.width, d.height = w, h
	d.sizeCalls++
}

type testGame struct {
	world   donburi.World
	items   *memItems
	store   *ConfigStore
	display *recordingDisplay
	screen  *components.SettingsMenuData
}

func (g *testGame) menu() *settings.Menu {
	return g.screen.Menu
}

// newTestGame spawns the audio and video owners and a settings menu over the
// game's own tables. The gameplay owner is left out.
func newTestGame(t *testing.T) *testGame {
	t.Helper()

	g := &testGame{
		world:   donburi.NewWorld(),
		items:   newMemItems(),
		display: &recordingDisplay{},
	}
	g.store = NewConfigStore(g.items)
	SpawnSettingsOwners(g.world, g.store)
	g.screen = NewSettingsMenu(g.world, assets.SettingsSource(), g.store,
		settings.WithApplier(SettingsApplier{World: g.world, Display: g.display}),
		settings.WithStrict(true),
	)
	return g
}
