package autoparse

import (
	"github.com/Hellinduction/AutoParse/internal"
)

// Value is the dynamic value threaded through tag resolution.
// The zero value is Null.
type Value = internal.Value

// Kind discriminates the variants of the Value union.
type Kind = internal.Kind

// Value kind constants
const (
	KindNull     = internal.KindNull
	KindBool     = internal.KindBool
	KindNumber   = internal.KindNumber
	KindString   = internal.KindString
	KindSequence = internal.KindSequence
	KindMapping  = internal.KindMapping
	KindObject   = internal.KindObject
)

// ObjectHandle is an opaque capability exposing named properties and methods
// to the path walker.
type ObjectHandle = internal.ObjectHandle

// Null returns the Null value.
func Null() Value { return internal.NullValue() }

// Bool wraps a boolean.
func Bool(b bool) Value { return internal.BoolValue(b) }

// Number wraps a number.
func Number(n float64) Value { return internal.NumberValue(n) }

// String wraps a string.
func String(s string) Value { return internal.StringValue(s) }

// Sequence wraps an ordered list of values.
func Sequence(items ...Value) Value { return internal.SequenceValue(items) }

// Mapping wraps a string-keyed map of values.
func Mapping(entries map[string]Value) Value { return internal.MappingValue(entries) }

// Object wraps an object handle.
func Object(h ObjectHandle) Value { return internal.ObjectValue(h) }

// FromAny converts a native Go value (as produced by JSON or YAML decoding)
// into a Value.
func FromAny(v any) Value { return internal.FromAny(v) }

// ToAny converts a Value back to a native Go value.
func ToAny(v Value) any { return internal.ToAny(v) }

// ObjectDef builds an ObjectHandle from explicit registration tables: named
// property getters and named method handlers. Nothing outside these tables is
// reachable from a tag, which keeps the host's code surface closed to the
// engine.
type ObjectDef struct {
	props   map[string]func() Value
	methods map[string]func(args []Value) (Value, error)
}

// NewObjectDef creates an empty object definition.
func NewObjectDef() *ObjectDef {
	return &ObjectDef{
		props:   make(map[string]func() Value),
		methods: make(map[string]func(args []Value) (Value, error)),
	}
}

// Property registers a named property getter and returns the definition for
// chaining. A later registration under the same name replaces the earlier.
func (d *ObjectDef) Property(name string, get func() Value) *ObjectDef {
	d.props[name] = get
	return d
}

// StaticProperty registers a fixed-value property.
func (d *ObjectDef) StaticProperty(name string, v Value) *ObjectDef {
	return d.Property(name, func() Value { return v })
}

// Method registers a named method handler.
func (d *ObjectDef) Method(name string, fn func(args []Value) (Value, error)) *ObjectDef {
	d.methods[name] = fn
	return d
}

// Value wraps the definition as an object Value.
func (d *ObjectDef) Value() Value {
	return Object(d)
}

// GetProperty implements ObjectHandle.
func (d *ObjectDef) GetProperty(name string) (Value, bool) {
	get, ok := d.props[name]
	if !ok {
		return Null(), false
	}
	return get(), true
}

// CallMethod implements ObjectHandle.
func (d *ObjectDef) CallMethod(name string, args []Value) (Value, error) {
	fn, ok := d.methods[name]
	if !ok {
		return Null(), NewMethodNotFoundError(name)
	}
	return fn(args)
}

// PropertyNames implements the property enumeration used by structured dumps
// and JSON encoding.
func (d *ObjectDef) PropertyNames() []string {
	names := make([]string, 0, len(d.props))
	for name := range d.props {
		names = append(names, name)
	}
	return names
}
