package settings

import (
	"slices"

	"github.com/automoto/doomerang-settings/tags"
)

// GetBool returns the checkbox state, asking the owner when a getter is bound.
func (m *Menu) GetBool(t tags.Tag) bool {
	_, c, ok := lookup[*Checkbox](m, t)
	if !ok {
		return false
	}
	if c.getter != nil {
		return c.getter()
	}
	return c.checked
}

// GetComboIndex returns the chosen member index, -1 when none was chosen.
func (m *Menu) GetComboIndex(t tags.Tag) int {
	_, c, ok := lookup[*Combobox](m, t)
	if !ok {
		return 0
	}
	if c.getter != nil {
		return c.getter()
	}
	return c.index
}

func (m *Menu) GetComboMembers(t tags.Tag) []string {
	_, c, ok := lookup[*Combobox](m, t)
	if !ok {
		return nil
	}
	if c.getMembers != nil {
		return c.getMembers()
	}
	return slices.Clone(c.Members)
}

// GetFloat returns the slider value.
func (m *Menu) GetFloat(t tags.Tag) float64 {
	_, sl, ok := lookup[*Slider](m, t)
	if !ok {
		return 0
	}
	if sl.getter != nil {
		return sl.getter()
	}
	return sl.value
}

// GetText returns the caption of a text line.
func (m *Menu) GetText(t tags.Tag) string {
	s, tl, ok := lookup[*TextLine](m, t)
	if !ok {
		return ""
	}
	if tl.getter != nil {
		return tl.getter()
	}
	return s.Primary.Caption
}

func (m *Menu) GetName(t tags.Tag) string {
	_, u, ok := lookup[*UserInput](m, t)
	if !ok {
		return ""
	}
	if u.getter != nil {
		return u.getter()
	}
	return u.value
}

// GetWidget returns the current widget of a custom widget setting.
func (m *Menu) GetWidget(t tags.Tag) any {
	_, cw, ok := lookup[*CustomWidget](m, t)
	if !ok {
		return nil
	}
	if cw.getter != nil {
		return cw.getter()
	}
	return cw.current
}
