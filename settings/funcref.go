package settings

// FunctionRef names a function by owner class and function name.
// Equality and hashing are structural over (class, function); the resolution cache is not part of it.
type FunctionRef struct {
	class    string
	function string
	cache    *resolvedFunction
}

type resolvedFunction struct {
	on *Class
	fn *Function
}

// NewFunctionRef returns a reference to class::function.
func NewFunctionRef(class, function string) FunctionRef {
	return FunctionRef{class: class, function: function}
}

// IsValid reports whether both class and function are set. It does not resolve anything.
func (f FunctionRef) IsValid() bool {
	return f.class != "" && f.function != ""
}

func (f FunctionRef) Class() string {
	return f.class
}

func (f FunctionRef) Function() string {
	return f.function
}

// SetClass changes the class and drops any cached resolution.
func (f *FunctionRef) SetClass(class string) {
	f.class = class
	f.cache = nil
}

// SetFunction changes the function name and drops any cached resolution.
func (f *FunctionRef) SetFunction(function string) {
	f.function = function
	f.cache = nil
}

func (f FunctionRef) Equal(other FunctionRef) bool {
	return f.class == other.class && f.function == other.function
}

// FunctionKey is the comparable identity of a FunctionRef.
type FunctionKey struct {
	Class    string
	Function string
}

// Key returns a map key consistent with Equal.
func (f FunctionRef) Key() FunctionKey {
	return FunctionKey{Class: f.class, Function: f.function}
}

func (f FunctionRef) String() string {
	if f.class == "" && f.function == "" {
		return "None"
	}
	return f.class + "::" + f.function
}

// Resolve finds the function on the declared class or its ancestors.
func (f *FunctionRef) Resolve(classes *ClassRegistry) (*Function, bool) {
	if !f.IsValid() {
		return nil, false
	}
	cls, ok := classes.Class(f.class)
	if !ok {
		return nil, false
	}
	return f.resolveOn(cls)
}

// ResolveOn finds the function by name on the runtime class of owner.
func (f *FunctionRef) ResolveOn(classes *ClassRegistry, owner any) (*Function, bool) {
	if f.function == "" {
		return nil, false
	}
	cls, ok := classes.ClassOf(owner)
	if !ok {
		return nil, false
	}
	return f.resolveOn(cls)
}

func (f *FunctionRef) resolveOn(cls *Class) (*Function, bool) {
	if f.cache != nil && f.cache.on == cls {
		return f.cache.fn, true
	}
	fn, ok := cls.Function(f.function)
	if !ok {
		return nil, false
	}
	f.cache = &resolvedFunction{on: cls, fn: fn}
	return fn, true
}
