package settings

import (
	"reflect"
	"unicode/utf8"

	"github.com/automoto/doomerang-settings/tags"
)

// lookup finds the setting under t when its value is a V.
func lookup[V Value](m *Menu, t tags.Tag) (*Setting, V, bool) {
	var zero V
	s, ok := m.registry.Find(t)
	if !ok {
		return nil, zero, false
	}
	v, ok := s.Value.(V)
	if !ok {
		return nil, zero, false
	}
	return s, v, true
}

// afterSet cascades to the dependents of s, refreshes its widget and notifies observers.
func (m *Menu) afterSet(s *Setting, cascade bool, change ChangeType) {
	if cascade {
		m.updateByTags(s.Primary.SettingsToUpdate, false, s.Tag())
	}
	m.refreshWidget(s)
	m.notify(Change{Type: change, Tag: s.Tag()})
}

// SetByTag sets the first setting whose tag contains name from its text form.
func (m *Menu) SetByTag(name, text string) bool {
	s, ok := m.registry.FindBySubstring(name)
	if !ok {
		return false
	}
	s.Value.setValueText(m, s.Tag(), text, true)
	return true
}

// SetValueText sets the setting under t from its text form.
func (m *Menu) SetValueText(t tags.Tag, text string) {
	if s, ok := m.registry.Find(t); ok {
		s.Value.setValueText(m, t, text, true)
	}
}

// ValueText returns the text form of the setting under t.
func (m *Menu) ValueText(t tags.Tag) string {
	s, ok := m.registry.Find(t)
	if !ok {
		return ""
	}
	return s.Value.valueText(m, t)
}

// PressButton runs the button's function and refreshes its dependents.
func (m *Menu) PressButton(t tags.Tag) {
	m.pressButton(t, true)
}

func (m *Menu) pressButton(t tags.Tag, cascade bool) {
	s, b, ok := lookup[*Button](m, t)
	if !ok {
		return
	}
	if b.pressed != nil {
		b.pressed()
	}
	m.afterSet(s, cascade, ChangePressed)
}

func (m *Menu) SetBool(t tags.Tag, v bool) {
	m.setBool(t, v, true)
}

func (m *Menu) setBool(t tags.Tag, v bool, cascade bool) {
	s, c, ok := lookup[*Checkbox](m, t)
	if !ok || c.checked == v {
		return
	}
	c.checked = v
	if c.setter != nil {
		c.setter(v)
	}
	m.afterSet(s, cascade, ChangeSet)
}

// SetComboIndex chooses a member. IndexNone is ignored.
func (m *Menu) SetComboIndex(t tags.Tag, index int) {
	m.setComboIndex(t, index, true)
}

func (m *Menu) setComboIndex(t tags.Tag, index int, cascade bool) {
	s, c, ok := lookup[*Combobox](m, t)
	if !ok || index == IndexNone || c.index == index {
		return
	}
	c.index = index
	if c.setter != nil {
		c.setter(index)
	}
	m.afterSet(s, cascade, ChangeSet)
}

// SetComboMembers replaces the members of a combobox. It never cascades.
func (m *Menu) SetComboMembers(t tags.Tag, members []string) {
	s, c, ok := lookup[*Combobox](m, t)
	if !ok {
		return
	}
	c.Members = append([]string(nil), members...)
	if c.setMembers != nil {
		c.setMembers(c.Members)
	}
	m.refreshWidget(s)
	m.notify(Change{Type: ChangeMembers, Tag: t})
}

// SetFloat sets a slider, clamping v to [0, 1].
func (m *Menu) SetFloat(t tags.Tag, v float64) {
	m.setFloat(t, v, true)
}

func (m *Menu) setFloat(t tags.Tag, v float64, cascade bool) {
	s, sl, ok := lookup[*Slider](m, t)
	if !ok {
		return
	}
	v = min(max(v, 0), 1)
	if sl.value == v {
		return
	}
	sl.value = v
	if sl.setter != nil {
		sl.setter(v)
	}
	m.afterSet(s, cascade, ChangeSet)
}

// SetText sets the caption of a text line.
func (m *Menu) SetText(t tags.Tag, text string) {
	m.setText(t, text, true)
}

func (m *Menu) setText(t tags.Tag, text string, cascade bool) {
	s, tl, ok := lookup[*TextLine](m, t)
	if !ok || s.Primary.Caption == text {
		return
	}
	s.Primary.Caption = text
	if tl.setter != nil {
		tl.setter(text)
	}
	m.afterSet(s, cascade, ChangeSet)
}

// SetName sets a user input. Empty names are ignored and long ones truncated.
func (m *Menu) SetName(t tags.Tag, name string) {
	m.setName(t, name, true)
}

func (m *Menu) setName(t tags.Tag, name string, cascade bool) {
	s, u, ok := lookup[*UserInput](m, t)
	if !ok || name == "" {
		return
	}
	if u.MaxChars > 0 && utf8.RuneCountInString(name) > u.MaxChars {
		name = string([]rune(name)[:u.MaxChars])
	}
	if u.value == name {
		return
	}
	u.value = name
	if u.setter != nil {
		u.setter(name)
	}
	m.afterSet(s, cascade, ChangeSet)
}

// SetWidget replaces the widget of a custom widget setting.
func (m *Menu) SetWidget(t tags.Tag, w any) {
	m.setWidget(t, w, true)
}

func (m *Menu) setWidget(t tags.Tag, w any, cascade bool) {
	s, cw, ok := lookup[*CustomWidget](m, t)
	if !ok || sameValue(cw.current, w) {
		return
	}
	cw.current = w
	if cw.setter != nil {
		cw.setter(w)
	}
	m.afterSet(s, cascade, ChangeSet)
}

// sameValue compares a and b without panicking on uncomparable types.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}
