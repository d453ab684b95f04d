package settings

import (
	"fmt"
	"reflect"

	"github.com/yohamta/donburi"
)

// Signature is the shape of a registered function once bound to an owner.
type Signature int

const (
	SigNone Signature = iota
	SigOwner
	SigGetBool
	SigSetBool
	SigGetInt
	SigSetInt
	SigGetMembers
	SigSetMembers
	SigGetFloat
	SigSetFloat
	SigGetText
	SigSetText
	SigGetName
	SigSetName
	SigGetWidget
	SigSetWidget
	SigButton
)

var signatureNames = [...]string{
	SigNone:       "none",
	SigOwner:      "func(World) any",
	SigGetBool:    "func() bool",
	SigSetBool:    "func(bool)",
	SigGetInt:     "func() int",
	SigSetInt:     "func(int)",
	SigGetMembers: "func() []string",
	SigSetMembers: "func([]string)",
	SigGetFloat:   "func() float64",
	SigSetFloat:   "func(float64)",
	SigGetText:    "func() text",
	SigSetText:    "func(text)",
	SigGetName:    "func() name",
	SigSetName:    "func(name)",
	SigGetWidget:  "func() widget",
	SigSetWidget:  "func(widget)",
	SigButton:     "func()",
}

func (s Signature) String() string {
	if s < 0 || int(s) >= len(signatureNames) {
		return fmt.Sprintf("Signature(%d)", int(s))
	}
	return signatureNames[s]
}

// Function is a named callable registered on a Class.
type Function struct {
	name  string
	class *Class
	sig   Signature

	// bind closes the function over an owner instance.
	// Static functions ignore the owner.
	bind func(owner any) (any, bool)
}

func (f *Function) Name() string {
	return f.name
}

// Class returns the class the function was registered on.
func (f *Function) Class() *Class {
	return f.class
}

func (f *Function) Signature() Signature {
	return f.sig
}

// bindAs binds fn to owner and asserts the resulting closure type.
func bindAs[F any](fn *Function, owner any, sig Signature) (F, bool) {
	var zero F
	if fn == nil || fn.sig != sig {
		return zero, false
	}
	v, ok := fn.bind(owner)
	if !ok {
		return zero, false
	}
	f, ok := v.(F)
	return f, ok
}

// Class is the function table of an owner type.
type Class struct {
	name   string
	parent *Class
	goType reflect.Type
	funcs  map[string]*Function
	order  []string
}

func (c *Class) Name() string {
	return c.name
}

// Parent returns the class c inherits functions from, or nil.
func (c *Class) Parent() *Class {
	return c.parent
}

// IsChildOf reports whether c is other or derives from it.
func (c *Class) IsChildOf(other *Class) bool {
	for k := c; k != nil; k = k.parent {
		if k == other {
			return true
		}
	}
	return false
}

// Function looks name up on c, then on its ancestors.
func (c *Class) Function(name string) (*Function, bool) {
	for k := c; k != nil; k = k.parent {
		if fn, ok := k.funcs[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// FunctionNames lists the functions reachable from c, own ones first.
func (c *Class) FunctionNames() []string {
	seen := make(map[string]bool)
	var names []string
	for k := c; k != nil; k = k.parent {
		for _, n := range k.order {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}

// add registers or replaces a function.
func (c *Class) add(name string, sig Signature, bind func(owner any) (any, bool)) {
	if _, ok := c.funcs[name]; !ok {
		c.order = append(c.order, name)
	}
	c.funcs[name] = &Function{name: name, class: c, sig: sig, bind: bind}
}

// ClassRegistry maps class names and owner Go types to classes.
type ClassRegistry struct {
	byName map[string]*Class
	byType map[reflect.Type]*Class
	order  []*Class
}

func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{
		byName: make(map[string]*Class),
		byType: make(map[reflect.Type]*Class),
	}
}

// DefineClass declares a class whose owners are values of type T.
// T may be an interface, which lets a parent class serve every owner type implementing it.
// Defining a name twice panics.
func DefineClass[T any](r *ClassRegistry, name string, parent *Class) *Class {
	c := r.define(name, parent)
	c.goType = reflect.TypeFor[T]()
	if c.goType.Kind() != reflect.Interface {
		r.byType[c.goType] = c
	}
	return c
}

// DefineStaticClass declares a class holding only owner-less functions.
func DefineStaticClass(r *ClassRegistry, name string) *Class {
	return r.define(name, nil)
}

func (r *ClassRegistry) define(name string, parent *Class) *Class {
	if name == "" {
		panic("settings: class name is empty")
	}
	if _, ok := r.byName[name]; ok {
		panic(fmt.Sprintf("settings: class %q already defined", name))
	}
	c := &Class{name: name, parent: parent, funcs: make(map[string]*Function)}
	r.byName[name] = c
	r.order = append(r.order, c)
	return c
}

// Class looks a class up by name.
func (r *ClassRegistry) Class(name string) (*Class, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.byName[name]
	return c, ok
}

// ClassOf returns the class of owner's dynamic type.
func (r *ClassRegistry) ClassOf(owner any) (*Class, bool) {
	if r == nil || owner == nil {
		return nil, false
	}
	c, ok := r.byType[reflect.TypeOf(owner)]
	return c, ok
}

// Classes returns every class in definition order.
func (r *ClassRegistry) Classes() []*Class {
	out := make([]*Class, len(r.order))
	copy(out, r.order)
	return out
}

// method registers a function whose bound form is produced by wrap.
func method[T any, F any](c *Class, name string, sig Signature, wrap func(T) F) {
	c.add(name, sig, func(owner any) (any, bool) {
		o, ok := owner.(T)
		if !ok {
			return nil, false
		}
		return wrap(o), true
	})
}

// OwnerFunc registers a static function returning the owner of a setting, or nil
// when it does not exist yet.
func OwnerFunc(c *Class, name string, fn func(w donburi.World) any) {
	c.add(name, SigOwner, func(any) (any, bool) {
		return fn, true
	})
}

func BoolGetter[T any](c *Class, name string, fn func(T) bool) {
	method(c, name, SigGetBool, func(o T) func() bool {
		return func() bool { return fn(o) }
	})
}

func BoolSetter[T any](c *Class, name string, fn func(T, bool)) {
	method(c, name, SigSetBool, func(o T) func(bool) {
		return func(v bool) { fn(o, v) }
	})
}

func IntGetter[T any](c *Class, name string, fn func(T) int) {
	method(c, name, SigGetInt, func(o T) func() int {
		return func() int { return fn(o) }
	})
}

func IntSetter[T any](c *Class, name string, fn func(T, int)) {
	method(c, name, SigSetInt, func(o T) func(int) {
		return func(v int) { fn(o, v) }
	})
}

// MembersGetter registers a function listing combobox members.
func MembersGetter[T any](c *Class, name string, fn func(T) []string) {
	method(c, name, SigGetMembers, func(o T) func() []string {
		return func() []string { return fn(o) }
	})
}

// MembersSetter registers a function receiving combobox members.
func MembersSetter[T any](c *Class, name string, fn func(T, []string)) {
	method(c, name, SigSetMembers, func(o T) func([]string) {
		return func(v []string) { fn(o, v) }
	})
}

func FloatGetter[T any](c *Class, name string, fn func(T) float64) {
	method(c, name, SigGetFloat, func(o T) func() float64 {
		return func() float64 { return fn(o) }
	})
}

func FloatSetter[T any](c *Class, name string, fn func(T, float64)) {
	method(c, name, SigSetFloat, func(o T) func(float64) {
		return func(v float64) { fn(o, v) }
	})
}

// TextGetter registers a display text getter, used by text lines.
func TextGetter[T any](c *Class, name string, fn func(T) string) {
	method(c, name, SigGetText, func(o T) func() string {
		return func() string { return fn(o) }
	})
}

func TextSetter[T any](c *Class, name string, fn func(T, string)) {
	method(c, name, SigSetText, func(o T) func(string) {
		return func(v string) { fn(o, v) }
	})
}

// NameGetter registers an identifier getter, used by user inputs.
func NameGetter[T any](c *Class, name string, fn func(T) string) {
	method(c, name, SigGetName, func(o T) func() string {
		return func() string { return fn(o) }
	})
}

func NameSetter[T any](c *Class, name string, fn func(T, string)) {
	method(c, name, SigSetName, func(o T) func(string) {
		return func(v string) { fn(o, v) }
	})
}

// WidgetGetter registers a custom widget getter.
func WidgetGetter[T any](c *Class, name string, fn func(T) any) {
	method(c, name, SigGetWidget, func(o T) func() any {
		return func() any { return fn(o) }
	})
}

func WidgetSetter[T any](c *Class, name string, fn func(T, any)) {
	method(c, name, SigSetWidget, func(o T) func(any) {
		return func(v any) { fn(o, v) }
	})
}

// ButtonHandler registers a function run when a button is pressed.
func ButtonHandler[T any](c *Class, name string, fn func(T)) {
	method(c, name, SigButton, func(o T) func() {
		return func() { fn(o) }
	})
}
