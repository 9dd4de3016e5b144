// Package flake assembles Nix flakes describing development shells and
// home-manager user profiles from an in-memory model, then renders the
// model to flake.nix syntax.
//
// The package is pure: builders mutate only their own receiver, rendering
// performs no I/O, and Render is idempotent. The rendered text is consumed
// by the nix CLI, so brace placement, two-space indentation, field ordering
// and trailing semicolons are part of the output contract.
package flake

// Kind identifies the shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindList
	KindAttrs
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindAttrs:
		return "attrs"
	default:
		return "unknown"
	}
}

// Value is a dynamically shaped Nix value: a string, number, boolean,
// null, heterogeneous list, or attribute set. The zero Value is null.
// Values are placed into containers by value; callers overwrite by
// supplying a new Value rather than mutating one in place.
type Value struct {
	kind  Kind
	str   string
	i     int64
	f     float64
	b     bool
	list  []Value
	attrs *AttrSet
}

// Str returns a string Value.
func Str(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating-point Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Null returns the null Value.
func Null() Value {
	return Value{kind: KindNull}
}

// List returns a list Value holding the given elements in order.
func List(elems ...Value) Value {
	return Value{kind: KindList, list: elems}
}

// StrList returns a list Value of string elements.
func StrList(elems ...string) Value {
	values := make([]Value, len(elems))
	for i, e := range elems {
		values[i] = Str(e)
	}
	return Value{kind: KindList, list: values}
}

// Attr is a single named attribute used with Attrs.
type Attr struct {
	Name  string
	Value Value
}

// A constructs an Attr. It exists so attribute-set literals read naturally:
//
//	flake.Attrs(flake.A("enable", flake.Bool(true)))
func A(name string, v Value) Attr {
	return Attr{Name: name, Value: v}
}

// Attrs returns an attribute-set Value with the given attributes in order.
func Attrs(attrs ...Attr) Value {
	set := NewAttrSet()
	for _, a := range attrs {
		set.Set(a.Name, a.Value)
	}
	return AttrsOf(set)
}

// AttrsOf wraps an existing AttrSet as a Value. The set is shared, not
// copied: later mutations through the set are visible to the Value.
func AttrsOf(set *AttrSet) Value {
	return Value{kind: KindAttrs, attrs: set}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// AttrSet returns the underlying attribute set, or nil when the value is
// not an attribute set.
func (v Value) AttrSet() *AttrSet {
	if v.kind != KindAttrs {
		return nil
	}
	return v.attrs
}

// AttrSet is a string-keyed mapping that preserves insertion order.
// Overwriting an existing key keeps its original position. Iteration via
// Keys always reflects insertion order, never a sorted view.
type AttrSet struct {
	keys   []string
	values map[string]Value
}

// NewAttrSet returns an empty attribute set.
func NewAttrSet() *AttrSet {
	return &AttrSet{values: make(map[string]Value)}
}

// Set stores v under key, overwriting any previous value. It returns the
// receiver for chaining.
func (a *AttrSet) Set(key string, v Value) *AttrSet {
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = v
	return a
}

// Get returns the value stored under key.
func (a *AttrSet) Get(key string) (Value, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is shared
// with the set and must not be modified.
func (a *AttrSet) Keys() []string {
	return a.keys
}

// Len returns the number of attributes.
func (a *AttrSet) Len() int {
	return len(a.keys)
}
