package settings

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/doomerang-settings/tags"
	"gopkg.in/yaml.v3"
)

// FunctionSpec is the table form of a FunctionRef.
type FunctionSpec struct {
	Class    string `yaml:"class"`
	Function string `yaml:"function"`
}

func (f FunctionSpec) Ref() FunctionRef {
	return NewFunctionRef(f.Class, f.Function)
}

func (f FunctionSpec) isSet() bool {
	return f.Class != "" || f.Function != ""
}

// ButtonRow configures a button.
type ButtonRow struct {
	Vertical   string `yaml:"vertical"`
	Horizontal string `yaml:"horizontal"`
}

// CheckboxRow configures a checkbox. It carries no options.
type CheckboxRow struct{}

type ComboboxRow struct {
	GetMembers FunctionSpec `yaml:"getMembers"`
	SetMembers FunctionSpec `yaml:"setMembers"`
	Members    []string     `yaml:"members"`
	Justify    string       `yaml:"justify"`
}

// SliderRow configures a slider. It carries no options.
type SliderRow struct{}

type TextLineRow struct {
	Vertical   string `yaml:"vertical"`
	Horizontal string `yaml:"horizontal"`
}

type UserInputRow struct {
	MaxChars int `yaml:"maxChars"`
}

type CustomWidgetRow struct {
	Class string `yaml:"class"`
}

// Row is one declarative table row.
type Row struct {
	Tag  string `yaml:"tag"`
	Type string `yaml:"type"`

	Owner  FunctionSpec `yaml:"owner"`
	Setter FunctionSpec `yaml:"setter"`
	Getter FunctionSpec `yaml:"getter"`

	Caption           string   `yaml:"caption"`
	Tooltip           string   `yaml:"tooltip"`
	Padding           Margin   `yaml:"padding"`
	LineHeight        float64  `yaml:"lineHeight"`
	StartOnNextColumn bool     `yaml:"startOnNextColumn"`
	SettingsToUpdate  []string `yaml:"settingsToUpdate"`
	ShowNextTo        string   `yaml:"showNextTo"`

	// At most one payload may be present and it must match Type.
	Button       *ButtonRow       `yaml:"button"`
	Checkbox     *CheckboxRow     `yaml:"checkbox"`
	Combobox     *ComboboxRow     `yaml:"combobox"`
	Slider       *SliderRow       `yaml:"slider"`
	TextLine     *TextLineRow     `yaml:"textLine"`
	UserInput    *UserInputRow    `yaml:"userInput"`
	CustomWidget *CustomWidgetRow `yaml:"customWidget"`
}

// Name identifies the row in diagnostics.
func (r Row) Name() string {
	if r.Tag != "" {
		return r.Tag
	}
	if r.Caption != "" {
		return fmt.Sprintf("%q", r.Caption)
	}
	return "<unnamed>"
}

// payloads returns the kinds whose payload is present.
func (r Row) payloads() []Kind {
	var kinds []Kind
	if r.Button != nil {
		kinds = append(kinds, KindButton)
	}
	if r.Checkbox != nil {
		kinds = append(kinds, KindCheckbox)
	}
	if r.Combobox != nil {
		kinds = append(kinds, KindCombobox)
	}
	if r.Slider != nil {
		kinds = append(kinds, KindSlider)
	}
	if r.TextLine != nil {
		kinds = append(kinds, KindTextLine)
	}
	if r.UserInput != nil {
		kinds = append(kinds, KindUserInput)
	}
	if r.CustomWidget != nil {
		kinds = append(kinds, KindCustomWidget)
	}
	return kinds
}

// Kind resolves the row's value kind from its type and payload.
func (r Row) Kind() (Kind, error) {
	payloads := r.payloads()
	if len(payloads) > 1 {
		return 0, fmt.Errorf("%d value payloads: %w", len(payloads), ErrAmbiguousValue)
	}
	if r.Type == "" {
		if len(payloads) == 0 {
			return 0, fmt.Errorf("no type and no value payload: %w", ErrAmbiguousValue)
		}
		return payloads[0], nil
	}
	kind, err := ParseKind(r.Type)
	if err != nil {
		return 0, err
	}
	if len(payloads) == 1 && payloads[0] != kind {
		return 0, fmt.Errorf("type %s with %s payload: %w", kind, payloads[0], ErrAmbiguousValue)
	}
	return kind, nil
}

// Setting builds a fresh runtime setting from the row.
func (r Row) Setting() (*Setting, error) {
	tag := tags.New(r.Tag)
	if !tag.IsValid() {
		return nil, fmt.Errorf("row %s: %w", r.Name(), ErrInvalidTag)
	}
	kind, err := r.Kind()
	if err != nil {
		return nil, fmt.Errorf("row %s: %w", r.Name(), err)
	}

	p := Primary{
		Tag:     tag,
		Owner:   r.Owner.Ref(),
		Setter:  r.Setter.Ref(),
		Getter:  r.Getter.Ref(),
		Caption: r.Caption,
		Tooltip: r.Tooltip,
		Layout: Layout{
			Padding:           r.Padding,
			LineHeight:        r.LineHeight,
			StartOnNextColumn: r.StartOnNextColumn,
		},
		SettingsToUpdate: tags.ParseSet(r.SettingsToUpdate...),
		ShowNextTo:       tags.New(r.ShowNextTo),
	}
	return NewSetting(p, r.value(kind))
}

func (r Row) value(kind Kind) Value {
	switch kind {
	case KindButton:
		b := NewButton()
		if r.Button != nil {
			b.Vertical = parseVertical(r.Button.Vertical)
			b.Horizontal = parseHorizontal(r.Button.Horizontal)
		}
		return b
	case KindCheckbox:
		return NewCheckbox()
	case KindCombobox:
		c := NewCombobox()
		if r.Combobox != nil {
			c.Members = append([]string(nil), r.Combobox.Members...)
			c.GetMembers = r.Combobox.GetMembers.Ref()
			c.SetMembers = r.Combobox.SetMembers.Ref()
			c.Justify = parseHorizontal(r.Combobox.Justify)
		}
		return c
	case KindSlider:
		return NewSlider()
	case KindTextLine:
		tl := NewTextLine()
		if r.TextLine != nil {
			tl.Vertical = parseVertical(r.TextLine.Vertical)
			tl.Horizontal = parseHorizontal(r.TextLine.Horizontal)
		}
		return tl
	case KindUserInput:
		u := NewUserInput(0)
		if r.UserInput != nil {
			u.MaxChars = r.UserInput.MaxChars
		}
		return u
	case KindCustomWidget:
		cw := NewCustomWidget("")
		if r.CustomWidget != nil {
			cw.Class = r.CustomWidget.Class
		}
		return cw
	}
	return nil
}

func parseVertical(s string) VerticalAlignment {
	switch strings.ToLower(s) {
	case "header":
		return AlignHeader
	case "footer":
		return AlignFooter
	}
	return AlignContent
}

func parseHorizontal(s string) HorizontalAlignment {
	switch strings.ToLower(s) {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	}
	return AlignLeft
}

// Table is a named list of rows.
type Table struct {
	Name string `yaml:"table"`
	Rows []Row  `yaml:"rows"`
}

// Source supplies the tables a menu is built from.
type Source interface {
	Tables() ([]Table, error)
}

// StaticSource serves in-memory tables.
type StaticSource []Table

func (s StaticSource) Tables() ([]Table, error) {
	return s, nil
}

// YAMLSource reads one table per file from FS.
type YAMLSource struct {
	FS    fs.FS
	Paths []string
}

func (s YAMLSource) Tables() ([]Table, error) {
	tables := make([]Table, 0, len(s.Paths))
	for _, p := range s.Paths {
		data, err := fs.ReadFile(s.FS, p)
		if err != nil {
			return nil, fmt.Errorf("read settings table %s: %w", p, err)
		}
		table, err := ParseTable(data)
		if err != nil {
			return nil, fmt.Errorf("parse settings table %s: %w", p, err)
		}
		if table.Name == "" {
			table.Name = strings.TrimSuffix(path.Base(p), path.Ext(p))
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// ParseTable decodes a YAML table document.
func ParseTable(data []byte) (Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return Table{}, err
	}
	return table, nil
}
