package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/doomerang-settings/tags"
)

// Kind discriminates the value variants.
type Kind int

const (
	KindButton Kind = iota
	KindCheckbox
	KindCombobox
	KindSlider
	KindTextLine
	KindUserInput
	KindCustomWidget
)

var kindNames = [...]string{
	KindButton:       "button",
	KindCheckbox:     "checkbox",
	KindCombobox:     "combobox",
	KindSlider:       "slider",
	KindTextLine:     "textLine",
	KindUserInput:    "userInput",
	KindCustomWidget: "customWidget",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a table type name to a Kind, ignoring case.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownType)
}

// getterSignature is the signature a getter of this kind must have.
func (k Kind) getterSignature() Signature {
	switch k {
	case KindButton:
		return SigButton
	case KindCheckbox:
		return SigGetBool
	case KindCombobox:
		return SigGetInt
	case KindSlider:
		return SigGetFloat
	case KindTextLine:
		return SigGetText
	case KindUserInput:
		return SigGetName
	case KindCustomWidget:
		return SigGetWidget
	}
	return SigNone
}

func (k Kind) setterSignature() Signature {
	switch k {
	case KindButton:
		return SigButton
	case KindCheckbox:
		return SigSetBool
	case KindCombobox:
		return SigSetInt
	case KindSlider:
		return SigSetFloat
	case KindTextLine:
		return SigSetText
	case KindUserInput:
		return SigSetName
	case KindCustomWidget:
		return SigSetWidget
	}
	return SigNone
}

// Value is the kind-specific part of a setting. Only this package implements it.
type Value interface {
	Kind() Kind

	// valueText reads the current value as text.
	valueText(m *Menu, t tags.Tag) string

	// setValueText parses text and routes it to the typed setter.
	setValueText(m *Menu, t tags.Tag, text string, cascade bool)

	// bind wires the getter and setter against owner.
	bind(m *Menu, s *Setting, owner any)

	// updatable reports whether the propagator may round-trip the value.
	updatable() bool
}

// VerticalAlignment places buttons and text lines in the header, content or footer.
type VerticalAlignment int

const (
	AlignContent VerticalAlignment = iota
	AlignHeader
	AlignFooter
)

// HorizontalAlignment aligns buttons and text lines within their row.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

// Button runs its owner function when pressed.
type Button struct {
	Vertical   VerticalAlignment
	Horizontal HorizontalAlignment

	pressed func()
}

func NewButton() *Button {
	return &Button{}
}

func (*Button) Kind() Kind { return KindButton }

func (*Button) valueText(*Menu, tags.Tag) string { return "" }

func (*Button) setValueText(m *Menu, t tags.Tag, _ string, cascade bool) {
	m.pressButton(t, cascade)
}

func (b *Button) bind(m *Menu, s *Setting, owner any) {
	p := &s.Primary
	if f, ok := bindFunction[func()](m, p, &p.Setter, owner, SigButton); ok {
		b.pressed = f
	} else if f, ok := bindFunction[func()](m, p, &p.Getter, owner, SigButton); ok {
		b.pressed = f
	}
}

func (*Button) updatable() bool { return false }

// Checkbox is an on/off value.
type Checkbox struct {
	checked bool
	getter  func() bool
	setter  func(bool)
}

func NewCheckbox() *Checkbox {
	return &Checkbox{}
}

func (*Checkbox) Kind() Kind { return KindCheckbox }

func (*Checkbox) valueText(m *Menu, t tags.Tag) string {
	return strconv.FormatBool(m.GetBool(t))
}

func (*Checkbox) setValueText(m *Menu, t tags.Tag, text string, cascade bool) {
	m.setBool(t, parseBool(text), cascade)
}

func (c *Checkbox) bind(m *Menu, s *Setting, owner any) {
	p := &s.Primary
	if f, ok := bindFunction[func() bool](m, p, &p.Getter, owner, SigGetBool); ok {
		c.getter = f
	}
	if f, ok := bindFunction[func(bool)](m, p, &p.Setter, owner, SigSetBool); ok {
		c.setter = f
	}
}

func (*Checkbox) updatable() bool { return true }

// parseBool accepts strconv forms plus "yes" and "on"; anything else is false.
func parseBool(text string) bool {
	text = strings.TrimSpace(text)
	if v, err := strconv.ParseBool(text); err == nil {
		return v
	}
	return strings.EqualFold(text, "yes") || strings.EqualFold(text, "on")
}

// IndexNone is the combobox index of no member. Setting it is ignored.
const IndexNone = -1

// Combobox selects one of its members by index.
type Combobox struct {
	// GetMembers and SetMembers name owner functions exchanging the member list.
	GetMembers FunctionRef
	SetMembers FunctionRef

	Members []string
	Justify HorizontalAlignment

	index      int
	getter     func() int
	setter     func(int)
	getMembers func() []string
	setMembers func([]string)
}

// NewCombobox returns a combobox with no member chosen.
func NewCombobox(members ...string) *Combobox {
	return &Combobox{Members: members, index: IndexNone}
}

func (*Combobox) Kind() Kind { return KindCombobox }

func (*Combobox) valueText(m *Menu, t tags.Tag) string {
	return strconv.Itoa(m.GetComboIndex(t))
}

// setValueText treats numeric text as an index and anything else as a
// comma-separated member list.
func (*Combobox) setValueText(m *Menu, t tags.Tag, text string, cascade bool) {
	if idx, ok := parseIndex(text); ok {
		m.setComboIndex(t, idx, cascade)
		return
	}
	m.SetComboMembers(t, splitMembers(text))
}

// parseIndex accepts a signed decimal number with at most one fraction part and
// returns its integer part, so "2.5" is index 2.
func parseIndex(text string) (int, bool) {
	text = strings.TrimSpace(text)
	digits := strings.TrimLeft(text, "+-")
	if len(text)-len(digits) > 1 {
		return 0, false
	}
	whole, frac, _ := strings.Cut(digits, ".")
	if whole+frac == "" || !isDigits(whole) || !isDigits(frac) {
		return 0, false
	}
	if whole == "" {
		return 0, true
	}
	idx, err := strconv.Atoi(text[:len(text)-len(digits)] + whole)
	if err != nil {
		return 0, false
	}
	return idx, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func splitMembers(text string) []string {
	var members []string
	for _, piece := range strings.Split(text, ",") {
		if piece != "" {
			members = append(members, piece)
		}
	}
	return members
}

func (c *Combobox) bind(m *Menu, s *Setting, owner any) {
	p := &s.Primary
	if f, ok := bindFunction[func() int](m, p, &p.Getter, owner, SigGetInt); ok {
		c.getter = f
	}
	if f, ok := bindFunction[func(int)](m, p, &p.Setter, owner, SigSetInt); ok {
		c.setter = f
	}
	if f, ok := bindFunction[func() []string](m, p, &c.GetMembers, owner, SigGetMembers); ok {
		c.getMembers = f
		if members := f(); members != nil {
			c.Members = members
		}
	}
	if f, ok := bindFunction[func([]string)](m, p, &c.SetMembers, owner, SigSetMembers); ok {
		c.setMembers = f
		f(c.Members)
	}
}

func (*Combobox) updatable() bool { return true }

// Slider is a normalized value in [0, 1].
type Slider struct {
	value  float64
	getter func() float64
	setter func(float64)
}

// NewSlider returns a slider that has not been set yet.
func NewSlider() *Slider {
	return &Slider{value: -1}
}

func (*Slider) Kind() Kind { return KindSlider }

func (*Slider) valueText(m *Menu, t tags.Tag) string {
	return strconv.FormatFloat(m.GetFloat(t), 'f', 6, 64)
}

func (*Slider) setValueText(m *Menu, t tags.Tag, text string, cascade bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		logf("Warning: slider %s: %q is not a number", t, text)
		return
	}
	m.setFloat(t, v, cascade)
}

func (sl *Slider) bind(m *Menu, s *Setting, owner any) {
	p := &s.Primary
	if f, ok := bindFunction[func() float64](m, p, &p.Getter, owner, SigGetFloat); ok {
		sl.getter = f
	}
	if f, ok := bindFunction[func(float64)](m, p, &p.Setter, owner, SigSetFloat); ok {
		sl.setter = f
	}
}

func (*Slider) updatable() bool { return true }

// TextLine displays its caption; the caption is the value.
type TextLine struct {
	Vertical   VerticalAlignment
	Horizontal HorizontalAlignment

	getter func() string
	setter func(string)
}

func NewTextLine() *TextLine {
	return &TextLine{}
}

func (*TextLine) Kind() Kind { return KindTextLine }

func (*TextLine) valueText(m *Menu, t tags.Tag) string {
	return m.GetText(t)
}

func (*TextLine) setValueText(m *Menu, t tags.Tag, text string, cascade bool) {
	m.setText(t, text, cascade)
}

func (tl *TextLine) bind(m *Menu, s *Setting, owner any) {
	p := &s.Primary
	if f, ok := bindFunction[func() string](m, p, &p.Getter, owner, SigGetText); ok {
		tl.getter = f
	}
	if f, ok := bindFunction[func(string)](m, p, &p.Setter, owner, SigSetText); ok {
		tl.setter = f
	}
}

func (*TextLine) updatable() bool { return true }

// UserInput is an editable name.
type UserInput struct {
	// MaxChars limits the input length in runes. Zero means unlimited.
	MaxChars int

	value  string
	getter func() string
	setter func(string)
}

func NewUserInput(maxChars int) *UserInput {
	return &UserInput{MaxChars: maxChars}
}

func (*UserInput) Kind() Kind { return KindUserInput }

func (*UserInput) valueText(m *Menu, t tags.Tag) string {
	return m.GetName(t)
}

func (*UserInput) setValueText(m *Menu, t tags.Tag, text string, cascade bool) {
	m.setName(t, text, cascade)
}

func (u *UserInput) bind(m *Menu, s *Setting, owner any) {
	p := &s.Primary
	if f, ok := bindFunction[func() string](m, p, &p.Getter, owner, SigGetName); ok {
		u.getter = f
	}
	if f, ok := bindFunction[func(string)](m, p, &p.Setter, owner, SigSetName); ok {
		u.setter = f
	}
}

func (*UserInput) updatable() bool { return true }

// CustomWidget hosts a game-provided widget; the widget is the value.
type CustomWidget struct {
	// Class names the widget the factory should build.
	Class string

	current any
	getter  func() any
	setter  func(any)
}

func NewCustomWidget(class string) *CustomWidget {
	return &CustomWidget{Class: class}
}

func (*CustomWidget) Kind() Kind { return KindCustomWidget }

// valueText is the widget's name when it has one.
func (*CustomWidget) valueText(m *Menu, t tags.Tag) string {
	w := m.GetWidget(t)
	if n, ok := w.(interface{ Name() string }); ok {
		return n.Name()
	}
	if w == nil {
		return ""
	}
	return fmt.Sprint(w)
}

// setValueText does nothing: a widget cannot be rebuilt from text.
func (*CustomWidget) setValueText(*Menu, tags.Tag, string, bool) {}

func (cw *CustomWidget) bind(m *Menu, s *Setting, owner any) {
	p := &s.Primary
	if f, ok := bindFunction[func() any](m, p, &p.Getter, owner, SigGetWidget); ok {
		cw.getter = f
	}
	if f, ok := bindFunction[func(any)](m, p, &p.Setter, owner, SigSetWidget); ok {
		cw.setter = f
	}
}

func (*CustomWidget) updatable() bool { return true }
