package settings

// Widget is the on-screen control of a setting.
type Widget interface {
	// Refresh redraws the control from the setting's current value.
	Refresh(s *Setting)
}

// WidgetFactory builds widgets for settings as the menu adds them.
type WidgetFactory interface {
	// Create returns the control for s, or nil when the factory has none for its kind.
	Create(m *Menu, s *Setting) Widget
}

// ColumnFactory is implemented by factories that lay settings out in columns.
type ColumnFactory interface {
	// StartColumn is called before the first setting of column index.
	StartColumn(index int)
}

// ResetFactory is implemented by factories that keep the widgets they created.
// Reset is called before a rebuild creates them again.
type ResetFactory interface {
	Reset()
}

// ConfigStore persists owner objects.
type ConfigStore interface {
	LoadForInstance(owner any) error
	SaveForInstance(owner any) error
}

// Applier applies pending settings, e.g. to the display, before they are saved.
type Applier interface {
	ApplySettings()
}
