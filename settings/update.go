package settings

import "github.com/automoto/doomerang-settings/tags"

// UpdateByTags re-reads every bound setting matching set from its owner and pushes the
// value back through the setting's own setter. With reload, owners are reloaded from the
// store first. The round trip does not cascade to further settings.
func (m *Menu) UpdateByTags(set *tags.Set, reload bool) {
	m.updateByTags(set, reload, tags.None)
}

// UpdateAll refreshes every setting.
func (m *Menu) UpdateAll(reload bool) {
	m.updateByTags(m.registry.Tags(), reload, tags.None)
}

// updateByTags skips origin, the setting whose setter triggered the update.
func (m *Menu) updateByTags(set *tags.Set, reload bool, origin tags.Tag) {
	if set.IsEmpty() {
		return
	}
	for _, s := range m.registry.Settings() {
		t := s.Tag()
		if t == origin || !t.MatchesAny(set) {
			continue
		}
		if !s.Primary.bound || !s.Value.updatable() {
			continue
		}
		owner := s.Primary.SettingOwner(m.world)
		if owner == nil {
			continue
		}
		if reload && m.store != nil {
			if err := m.store.LoadForInstance(owner); err != nil {
				logf("Warning: failed to reload %T for %s: %v", owner, t, err)
			}
		}
		s.Value.setValueText(m, t, s.Value.valueText(m, t), false)
	}
}

// TagByFunction returns the tag of the first setting whose getter or setter is ref.
func (m *Menu) TagByFunction(ref FunctionRef) tags.Tag {
	for _, s := range m.registry.Settings() {
		if s.Primary.Getter.Equal(ref) || s.Primary.Setter.Equal(ref) {
			return s.Tag()
		}
	}
	return tags.None
}

// UpdateByFunction refreshes the setting bound to class::function, for owners whose
// value changed outside the menu.
func (m *Menu) UpdateByFunction(class, function string) {
	if t := m.TagByFunction(NewFunctionRef(class, function)); t.IsValid() {
		m.UpdateByTags(tags.NewSet(t), false)
	}
}
