package settings

import (
	"fmt"

	"github.com/automoto/doomerang-settings/tags"
)

// Setting is one row of the menu: the shared descriptor plus exactly one value variant.
type Setting struct {
	Primary Primary
	Value   Value
}

// NewSetting pairs p with v. Both a valid tag and a value are required.
func NewSetting(p Primary, v Value) (*Setting, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("new setting: %w", ErrInvalidTag)
	}
	if isNil(v) {
		return nil, fmt.Errorf("new setting %s: no value: %w", p.Tag, ErrAmbiguousValue)
	}
	if p.Layout.LineHeight <= 0 {
		p.Layout.LineHeight = DefaultLineHeight
	}
	if p.SettingsToUpdate == nil {
		p.SettingsToUpdate = tags.NewSet()
	}
	return &Setting{Primary: p, Value: v}, nil
}

func (s *Setting) Tag() tags.Tag {
	return s.Primary.Tag
}

func (s *Setting) Kind() Kind {
	return s.Value.Kind()
}

func (s *Setting) String() string {
	return fmt.Sprintf("%s(%s)", s.Kind(), s.Primary.Tag)
}
