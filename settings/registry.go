package settings

import (
	"strings"

	"github.com/automoto/doomerang-settings/tags"
)

// Registry holds settings in display order, indexed by tag.
type Registry struct {
	settings []*Setting
	index    map[tags.Tag]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[tags.Tag]int)}
}

// Add appends s, or replaces the setting already registered under its tag in place.
// Settings without a valid tag are refused.
func (r *Registry) Add(s *Setting) bool {
	if s == nil || !s.Primary.IsValid() {
		return false
	}
	if i, ok := r.index[s.Tag()]; ok {
		r.settings[i] = s
		return true
	}
	r.index[s.Tag()] = len(r.settings)
	r.settings = append(r.settings, s)
	return true
}

// Find returns the setting registered under t.
func (r *Registry) Find(t tags.Tag) (*Setting, bool) {
	if !t.IsValid() {
		return nil, false
	}
	i, ok := r.index[t]
	if !ok {
		return nil, false
	}
	return r.settings[i], true
}

// FindBySubstring returns the first setting, in display order, whose tag name contains name.
func (r *Registry) FindBySubstring(name string) (*Setting, bool) {
	if name == "" {
		return nil, false
	}
	for _, s := range r.settings {
		if strings.Contains(s.Tag().Name(), name) {
			return s, true
		}
	}
	return nil, false
}

// ForEach visits settings in display order until fn returns false.
func (r *Registry) ForEach(fn func(*Setting) bool) {
	for _, s := range r.settings {
		if !fn(s) {
			return
		}
	}
}

// Settings returns a snapshot of the settings in display order.
func (r *Registry) Settings() []*Setting {
	out := make([]*Setting, len(r.settings))
	copy(out, r.settings)
	return out
}

// Tags returns the registered tags in display order.
func (r *Registry) Tags() *tags.Set {
	set := tags.NewSet()
	for _, s := range r.settings {
		set.Add(s.Tag())
	}
	return set
}

func (r *Registry) Len() int {
	return len(r.settings)
}

func (r *Registry) Clear() {
	r.settings = nil
	clear(r.index)
}
