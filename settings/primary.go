package settings

import (
	"reflect"
	"slices"

	"github.com/automoto/doomerang-settings/tags"
	"github.com/yohamta/donburi"
)

// DefaultLineHeight is the row height used when a table leaves it unset.
const DefaultLineHeight = 48

// Margin is a padding in UI units.
type Margin struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Layout carries the presentation hints of a row.
type Layout struct {
	Padding           Margin
	LineHeight        float64
	StartOnNextColumn bool
}

// Primary holds the fields shared by every setting kind.
type Primary struct {
	Tag tags.Tag

	// Owner is a static function returning the object that owns the value.
	Owner FunctionRef

	Setter FunctionRef
	Getter FunctionRef

	Caption string
	Tooltip string
	Layout  Layout

	// SettingsToUpdate are refreshed after this setting is set.
	SettingsToUpdate *tags.Set

	// ShowNextTo moves the row right after the setting with this tag.
	ShowNextTo tags.Tag

	widget         Widget
	ownerFunc      func(donburi.World) any
	ownerFunctions []string
	bound          bool
}

// IsValid reports whether the setting has a usable tag.
func (p *Primary) IsValid() bool {
	return p.Tag.IsValid()
}

// SettingOwner returns the current owner object, or nil when the owner function is
// unbound or the owner does not exist yet.
func (p *Primary) SettingOwner(w donburi.World) any {
	if p.ownerFunc == nil {
		return nil
	}
	owner := p.ownerFunc(w)
	if isNil(owner) {
		return nil
	}
	return owner
}

// OwnerFunctions lists the functions the owner's class exposes.
func (p *Primary) OwnerFunctions() []string {
	return slices.Clone(p.ownerFunctions)
}

// HasOwnerFunction reports whether name is callable on the bound owner.
func (p *Primary) HasOwnerFunction(name string) bool {
	return name != "" && slices.Contains(p.ownerFunctions, name)
}

// IsBound reports whether the owner was found and the value functions wired.
func (p *Primary) IsBound() bool {
	return p.bound
}

// Widget returns the widget created for the setting, if any.
func (p *Primary) Widget() Widget {
	return p.widget
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
