package settings

import (
	"github.com/automoto/doomerang-settings/tags"
	"github.com/yohamta/donburi"
)

// fakeOwner is an owner object that counts calls to its functions.
type fakeOwner struct {
	Flag    bool
	Index   int
	Volume  float64
	Name    string
	Caption string
	Members []string

	calls map[string]int

	onSetFlag func(o *fakeOwner, v bool)
}

func newFakeOwner() *fakeOwner {
	return &fakeOwner{calls: make(map[string]int)}
}

func (o *fakeOwner) hit(name string) {
	o.calls[name]++
}

// baseOwner is implemented by every fake owner, like a parent class.
type baseOwner interface {
	Reset()
}

func (o *fakeOwner) Reset() {
	o.hit("Reset")
	o.Flag = false
	o.Index = 0
	o.Volume = 0
}

// otherOwner has a class that exposes none of fakeOwner's value functions.
type otherOwner struct{}

func (otherOwner) Reset() {}

// fixture wires a class registry around a replaceable fake owner.
type fixture struct {
	owner   *fakeOwner
	classes *ClassRegistry
	world   donburi.World
}

func newFixture() *fixture {
	f := &fixture{owner: newFakeOwner(), world: donburi.NewWorld()}
	f.classes = NewClassRegistry()

	base := DefineClass[baseOwner](f.classes, "Base", nil)
	ButtonHandler(base, "Reset", baseOwner.Reset)

	c := DefineClass[*fakeOwner](f.classes, "Fake", base)
	OwnerFunc(c, "Get", func(donburi.World) any {
		// A typed nil must count as no owner.
		return f.owner
	})
	BoolGetter(c, "IsFlag", func(o *fakeOwner) bool {
		o.hit("IsFlag")
		return o.Flag
	})
	BoolSetter(c, "SetFlag", func(o *fakeOwner, v bool) {
		o.hit("SetFlag")
		o.Flag = v
		if o.onSetFlag != nil {
			o.onSetFlag(o, v)
		}
	})
	IntGetter(c, "GetIndex", func(o *fakeOwner) int {
		o.hit("GetIndex")
		return o.Index
	})
	IntSetter(c, "SetIndex", func(o *fakeOwner, v int) {
		o.hit("SetIndex")
		o.Index = v
	})
	MembersGetter(c, "GetMembers", func(o *fakeOwner) []string {
		o.hit("GetMembers")
		return o.Members
	})
	MembersSetter(c, "SetMembers", func(o *fakeOwner, v []string) {
		o.hit("SetMembers")
		o.Members = v
	})
	FloatGetter(c, "GetVolume", func(o *fakeOwner) float64 {
		o.hit("GetVolume")
		return o.Volume
	})
	FloatSetter(c, "SetVolume", func(o *fakeOwner, v float64) {
		o.hit("SetVolume")
		o.Volume = v
	})
	NameGetter(c, "GetName", func(o *fakeOwner) string {
		o.hit("GetName")
		return o.Name
	})
	NameSetter(c, "SetName", func(o *fakeOwner, v string) {
		o.hit("SetName")
		o.Name = v
	})
	TextGetter(c, "GetCaption", func(o *fakeOwner) string {
		o.hit("GetCaption")
		return o.Caption
	})

	other := DefineClass[otherOwner](f.classes, "Other", base)
	OwnerFunc(other, "Get", func(donburi.World) any { return otherOwner{} })

	return f
}

func (f *fixture) menu(tables []Table, opts ...Option) *Menu {
	opts = append([]Option{WithSource(StaticSource(tables))}, opts...)
	return NewMenu(f.world, f.classes, opts...)
}

var fakeOwnerSpec = FunctionSpec{Class: "Fake", Function: "Get"}

func fake(function string) FunctionSpec {
	return FunctionSpec{Class: "Fake", Function: function}
}

func checkboxRow(tag string, deps ...string) Row {
	return Row{
		Tag: tag, Type: "checkbox", Owner: fakeOwnerSpec,
		Getter: fake("IsFlag"), Setter: fake("SetFlag"),
		SettingsToUpdate: deps,
	}
}

func sliderRow(tag string, deps ...string) Row {
	return Row{
		Tag: tag, Type: "slider", Owner: fakeOwnerSpec,
		Getter: fake("GetVolume"), Setter: fake("SetVolume"),
		SettingsToUpdate: deps,
	}
}

func comboRow(tag string, members ...string) Row {
	return Row{
		Tag: tag, Type: "combobox", Owner: fakeOwnerSpec,
		Getter: fake("GetIndex"), Setter: fake("SetIndex"),
		Combobox: &ComboboxRow{Members: members},
	}
}

func table(name string, rows ...Row) Table {
	return Table{Name: name, Rows: rows}
}

func tagNames(rows []Row) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Tag
	}
	return names
}

// recorder collects menu changes.
type recorder struct {
	changes []Change
}

func (r *recorder) observe(c Change) {
	r.changes = append(r.changes, c)
}

func (r *recorder) count(typ ChangeType, t tags.Tag) int {
	n := 0
	for _, c := range r.changes {
		if c.Type == typ && c.Tag == t {
			n++
		}
	}
	return n
}

// fakeStore records saved and loaded owners.
type fakeStore struct {
	saved  []any
	loaded []any
}

func (s *fakeStore) LoadForInstance(owner any) error {
	s.loaded = append(s.loaded, owner)
	return nil
}

func (s *fakeStore) SaveForInstance(owner any) error {
	s.saved = append(s.saved, owner)
	return nil
}

// fakeWidget counts refreshes.
type fakeWidget struct {
	name      string
	refreshes int
}

func (w *fakeWidget) Refresh(*Setting) { w.refreshes++ }

func (w *fakeWidget) Name() string { return w.name }

type fakeFactory struct {
	created []tags.Tag
	columns []int
	resets  int
}

func (f *fakeFactory) Reset() {
	f.resets++
	f.created = nil
	f.columns = nil
}

func (f *fakeFactory) Create(_ *Menu, s *Setting) Widget {
	f.created = append(f.created, s.Tag())
	return &fakeWidget{name: s.Tag().Name()}
}

func (f *fakeFactory) StartColumn(index int) {
	f.columns = append(f.columns, index)
}
