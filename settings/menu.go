package settings

import (
	"fmt"
	"reflect"

	"github.com/automoto/doomerang-settings/tags"
	"github.com/yohamta/donburi"
)

// Menu binds table-declared settings to their owners and keeps both in sync.
// It is not safe for concurrent use; call it from the game loop.
type Menu struct {
	world   donburi.World
	classes *ClassRegistry
	source  Source
	store   ConfigStore
	applier Applier
	widgets WidgetFactory
	strict  bool

	registry *Registry
	deferred *tags.Set
	columns  int

	constructed bool
	rebuilding  bool
	open        bool

	observers    []observerEntry
	nextObserver uint64
}

// Option configures a Menu.
type Option func(*Menu)

// WithSource sets where the tables come from.
func WithSource(src Source) Option {
	return func(m *Menu) { m.source = src }
}

// WithStore sets the store used to reload and save owners.
func WithStore(store ConfigStore) Option {
	return func(m *Menu) { m.store = store }
}

// WithApplier sets what Save applies before saving.
func WithApplier(a Applier) Option {
	return func(m *Menu) { m.applier = a }
}

// WithWidgetFactory sets the widget factory.
func WithWidgetFactory(f WidgetFactory) Option {
	return func(m *Menu) { m.widgets = f }
}

// WithStrict makes invariant violations panic instead of being logged.
func WithStrict(strict bool) Option {
	return func(m *Menu) { m.strict = strict }
}

// NewMenu returns an unbuilt menu resolving owners in w through classes.
func NewMenu(w donburi.World, classes *ClassRegistry, opts ...Option) *Menu {
	m := &Menu{
		world:    w,
		classes:  classes,
		registry: NewRegistry(),
		deferred: tags.NewSet(),
		columns:  1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// World returns the world owners are resolved in.
func (m *Menu) World() donburi.World {
	return m.world
}

// Classes returns the class registry used for binding.
func (m *Menu) Classes() *ClassRegistry {
	return m.classes
}

// invariant reports a broken invariant: a panic in strict mode, a log line otherwise.
func (m *Menu) invariant(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if m.strict {
		panic("settings: " + msg)
	}
	logf("ERROR: %s", msg)
}

// Construct builds the menu once. Later calls do nothing.
func (m *Menu) Construct() {
	if m.constructed {
		return
	}
	m.Rebuild()
}

// IsConstructed reports whether the menu was built.
func (m *Menu) IsConstructed() bool {
	return m.constructed
}

// Rebuild discards the registry and builds it again from the tables.
// It reports whether the tables could be read.
func (m *Menu) Rebuild() bool {
	if m.rebuilding {
		m.invariant("rebuild called while rebuilding")
		return false
	}
	m.rebuilding = true
	defer func() { m.rebuilding = false }()

	if m.source == nil {
		logf("Warning: no settings source, menu is empty")
		return false
	}
	tables, err := m.source.Tables()
	if err != nil {
		logf("Warning: failed to load settings tables: %v", err)
		return false
	}

	m.registry.Clear()
	m.deferred.Clear()
	m.columns = 1
	if rf, ok := m.widgets.(ResetFactory); ok {
		rf.Reset()
	}

	for _, row := range Order(tables) {
		s, err := row.Setting()
		if err != nil {
			m.invariant("skipping %v", err)
			continue
		}
		m.registry.Add(s)
	}

	added := tags.NewSet()
	for i, s := range m.registry.Settings() {
		if s.Primary.Layout.StartOnNextColumn && i > 0 {
			m.columns++
		}
		m.bindSetting(s)
		m.addSetting(s)
		added.Add(s.Tag())
	}

	m.constructed = true
	m.UpdateByTags(added, false)
	m.notify(Change{Type: ChangeRebuilt})
	return true
}

// addSetting creates the widget of s.
func (m *Menu) addSetting(s *Setting) {
	if m.widgets == nil {
		return
	}
	if cf, ok := m.widgets.(ColumnFactory); ok && s.Primary.Layout.StartOnNextColumn {
		cf.StartColumn(m.columns - 1)
	}
	w := m.widgets.Create(m, s)
	if isNil(w) {
		return
	}
	s.Primary.widget = w
	if cw, ok := s.Value.(*CustomWidget); ok && cw.current == nil {
		cw.current = w
	}
}

func (m *Menu) refreshWidget(s *Setting) {
	if s.Primary.widget != nil {
		s.Primary.widget.Refresh(s)
	}
}

// Len returns the number of settings.
func (m *Menu) Len() int {
	return m.registry.Len()
}

// Columns returns how many columns the settings are laid out in.
func (m *Menu) Columns() int {
	return m.columns
}

// Find returns the setting registered under t.
func (m *Menu) Find(t tags.Tag) (*Setting, bool) {
	return m.registry.Find(t)
}

// FindBySubstring returns the first setting whose tag contains name.
func (m *Menu) FindBySubstring(name string) (*Setting, bool) {
	return m.registry.FindBySubstring(name)
}

// Settings returns the settings in display order.
func (m *Menu) Settings() []*Setting {
	return m.registry.Settings()
}

// Widget returns the widget created for t.
func (m *Menu) Widget(t tags.Tag) Widget {
	s, ok := m.registry.Find(t)
	if !ok {
		return nil
	}
	return s.Primary.widget
}

// Deferred returns the tags still waiting for their owner.
func (m *Menu) Deferred() *tags.Set {
	return m.deferred.Clone()
}

// IsOpen reports whether the menu is shown.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Open builds the menu if needed and binds settings whose owners appeared since.
func (m *Menu) Open() {
	if m.open {
		return
	}
	m.Construct()
	m.RetryDeferred()
	m.open = true
	m.notify(Change{Type: ChangeToggled, Open: true})
}

// Close hides the menu and saves every owner.
func (m *Menu) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.Save()
	m.notify(Change{Type: ChangeToggled, Open: false})
}

// Toggle opens a closed menu and closes an open one.
func (m *Menu) Toggle() {
	if m.open {
		m.Close()
	} else {
		m.Open()
	}
}

// Save applies the settings, then saves each distinct owner through the store.
func (m *Menu) Save() {
	if m.applier != nil {
		m.applier.ApplySettings()
	}
	if m.store == nil {
		return
	}

	var saved []any
	seen := make(map[any]bool)
	for _, s := range m.registry.Settings() {
		owner := s.Primary.SettingOwner(m.world)
		if owner == nil {
			continue
		}
		if reflect.TypeOf(owner).Comparable() {
			if seen[owner] {
				continue
			}
			seen[owner] = true
		}
		saved = append(saved, owner)
	}

	for _, owner := range saved {
		if err := m.store.SaveForInstance(owner); err != nil {
			logf("Warning: failed to save %T: %v", owner, err)
		}
	}
}
