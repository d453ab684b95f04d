package systems

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/doomerang-settings/components"
	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/automoto/doomerang-settings/settings"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ErrUnknownCommand is returned for console input that is not a settings command.
var ErrUnknownCommand = errors.New("unknown settings command")

// GetOrCreateSettingsMenu returns the settings screen singleton.
func GetOrCreateSettingsMenu(w donburi.World) *components.SettingsMenuData {
	if s := first(w, components.SettingsMenu); s != nil {
		return s
	}
	ent := w.Entry(w.Create(components.SettingsMenu))
	components.SettingsMenu.SetValue(ent, components.SettingsMenuData{})
	return components.SettingsMenu.Get(ent)
}

// NewSettingsMenu attaches a settings menu built from src to the world's settings screen.
// It does nothing when the screen already has one.
func NewSettingsMenu(w donburi.World, src settings.Source, store *ConfigStore, opts ...settings.Option) *components.SettingsMenuData {
	screen := GetOrCreateSettingsMenu(w)
	if screen.Menu != nil {
		return screen
	}

	all := append([]settings.Option{
		settings.WithSource(src),
		settings.WithStore(store),
		settings.WithApplier(SettingsApplier{World: w, Display: display}),
		settings.WithStrict(cfg.Debug.StrictSettings),
	}, opts...)
	screen.Menu = settings.NewMenu(w, NewSettingsClasses(), all...)

	screen.Menu.Subscribe(func(c settings.Change) {
		if c.Type == settings.ChangeToggled {
			startFade(screen, c.Open)
		}
	})
	return screen
}

func startFade(s *components.SettingsMenuData, open bool) {
	target := float32(0)
	if open {
		target = 1
	}
	s.Fade = gween.New(s.Alpha, target, float32(cfg.SettingsMenu.FadeDuration.Seconds()), ease.OutQuad)
}

// OpenSettings shows the settings overlay.
func OpenSettings(w donburi.World, fromPause bool) {
	s := GetOrCreateSettingsMenu(w)
	if s.Menu == nil {
		return
	}
	s.OpenedFromPause = fromPause
	s.Menu.Open()
}

// CloseSettings hides the overlay, applying and saving the settings.
func CloseSettings(w donburi.World) {
	if s := GetOrCreateSettingsMenu(w); s.Menu != nil {
		s.Menu.Close()
	}
}

// ToggleSettings opens a closed overlay and closes an open one.
func ToggleSettings(w donburi.World) {
	s := GetOrCreateSettingsMenu(w)
	if s.Menu == nil {
		return
	}
	if s.Menu.IsOpen() {
		s.Menu.Close()
	} else {
		OpenSettings(w, false)
	}
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(w donburi.World) bool {
	s := GetOrCreateSettingsMenu(w)
	return s.Menu != nil && s.Menu.IsOpen()
}

// UpdateSettingsFade advances the overlay fade by dt seconds.
func UpdateSettingsFade(w donburi.World, dt float32) {
	s := GetOrCreateSettingsMenu(w)
	if s.Fade == nil {
		return
	}
	alpha, done := s.Fade.Update(dt)
	s.Alpha = alpha
	if done {
		s.Fade = nil
	}
}

// RunSettingsCommand executes a console line:
//
//	set <name> <value>   set the first setting whose tag contains name
//	get <name>           print its value
//	list                 print every tag
//	reload               reload owners from disk and refresh
//	save                 apply and save
func RunSettingsCommand(w donburi.World, line string) (string, error) {
	s := GetOrCreateSettingsMenu(w)
	if s.Menu == nil {
		return "", fmt.Errorf("run %q: settings menu not created", line)
	}
	m := s.Menu
	m.Construct()

	out, err := runCommand(m, strings.Fields(line))
	if err != nil {
		s.ConsoleOutput = err.Error()
		return "", err
	}
	s.ConsoleOutput = out
	return out, nil
}

func runCommand(m *settings.Menu, args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrUnknownCommand
	}

	switch args[0] {
	case "set":
		if len(args) < 3 {
			return "", fmt.Errorf("usage: set <name> <value>")
		}
		if !m.SetByTag(args[1], strings.Join(args[2:], " ")) {
			return "", fmt.Errorf("no setting matches %q", args[1])
		}
		found, _ := m.FindBySubstring(args[1])
		return fmt.Sprintf("%s = %s", found.Tag(), m.ValueText(found.Tag())), nil
	case "get":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: get <name>")
		}
		found, ok := m.FindBySubstring(args[1])
		if !ok {
			return "", fmt.Errorf("no setting matches %q", args[1])
		}
		return fmt.Sprintf("%s = %s", found.Tag(), m.ValueText(found.Tag())), nil
	case "list":
		names := make([]string, 0, m.Len())
		for _, st := range m.Settings() {
			names = append(names, fmt.Sprintf("%s (%s)", st.Tag(), st.Kind()))
		}
		return strings.Join(names, "\n"), nil
	case "reload":
		m.UpdateAll(true)
		return "settings reloaded", nil
	case "save":
		m.Save()
		return "settings saved", nil
	}
	return "", fmt.Errorf("%q: %w", args[0], ErrUnknownCommand)
}
