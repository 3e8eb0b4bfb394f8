package internal

import (
	"fmt"
	"sort"
)

// Kind discriminates the variants of the Value union.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
	KindObject
)

// Kind string names
const (
	KindNameNull     = "null"
	KindNameBool     = "bool"
	KindNameNumber   = "number"
	KindNameString   = "string"
	KindNameSequence = "sequence"
	KindNameMapping  = "mapping"
	KindNameObject   = "object"
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindBool:
		return KindNameBool
	case KindNumber:
		return KindNameNumber
	case KindString:
		return KindNameString
	case KindSequence:
		return KindNameSequence
	case KindMapping:
		return KindNameMapping
	case KindObject:
		return KindNameObject
	default:
		return KindNameNull
	}
}

// ObjectHandle is an opaque capability exposing named properties and methods.
// Implementations decide which names exist; the walker never reflects on the
// host's code surface beyond this interface.
type ObjectHandle interface {
	// GetProperty returns the named property and true, or false if the
	// handle does not expose it.
	GetProperty(name string) (Value, bool)

	// CallMethod invokes the named method. An error means the method does
	// not exist or rejected the call; the walker treats both as a lookup
	// failure.
	CallMethod(name string, args []Value) (Value, error)
}

// PropertyLister is an optional extension of ObjectHandle that enumerates
// property names, enabling structured dumps and JSON encoding of handles.
type PropertyLister interface {
	PropertyNames() []string
}

// Value is the dynamic value threaded through tag resolution.
// The zero value is Null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	seq  []Value
	m    map[string]Value
	obj  ObjectHandle
}

// NullValue returns the Null value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NumberValue wraps a number.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

// StringValue wraps a string.
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// SequenceValue wraps an ordered list of values.
func SequenceValue(items []Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// MappingValue wraps a string-keyed map of values.
func MappingValue(entries map[string]Value) Value {
	if entries == nil {
		entries = make(map[string]Value)
	}
	return Value{kind: KindMapping, m: entries}
}

// ObjectValue wraps an object handle. A nil handle yields Null.
func ObjectValue(h ObjectHandle) Value {
	if h == nil {
		return NullValue()
	}
	return Value{kind: KindObject, obj: h}
}

// Kind returns the variant of this value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is Null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload, or false for other kinds.
func (v Value) AsBool() bool {
	return v.kind == KindBool && v.b
}

// AsNumber returns the numeric payload, or 0 for other kinds.
func (v Value) AsNumber() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.n
}

// AsString returns the string payload, or "" for other kinds.
func (v Value) AsString() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Items returns the sequence payload, or nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.seq
}

// Entries returns a copy of the mapping payload, or nil for other kinds.
func (v Value) Entries() map[string]Value {
	if v.kind != KindMapping {
		return nil
	}
	out := make(map[string]Value, len(v.m))
	for k, val := range v.m {
		out[k] = val
	}
	return out
}

// Handle returns the object handle, or nil for other kinds.
func (v Value) Handle() ObjectHandle {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Len returns the element count for countable kinds (sequence, mapping)
// and false for everything else.
func (v Value) Len() (int, bool) {
	switch v.kind {
	case KindSequence:
		return len(v.seq), true
	case KindMapping:
		return len(v.m), true
	default:
		return 0, false
	}
}

// String renders the value in its natural string form (Null empty, Bool
// truthy convention, minimal decimal numbers, structured dump otherwise).
func (v Value) String() string {
	return Render(v)
}

// FromAny converts a native Go value into a Value. Recognized inputs are
// nil, bool, numeric types, string, []any, []string, map[string]any,
// map[string]string, Value itself, and ObjectHandle implementations.
// Anything else is rendered through fmt as a string.
func FromAny(v any) Value {
	switch x := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return x
	case bool:
		return BoolValue(x)
	case int:
		return NumberValue(float64(x))
	case int8:
		return NumberValue(float64(x))
	case int16:
		return NumberValue(float64(x))
	case int32:
		return NumberValue(float64(x))
	case int64:
		return NumberValue(float64(x))
	case uint:
		return NumberValue(float64(x))
	case uint8:
		return NumberValue(float64(x))
	case uint16:
		return NumberValue(float64(x))
	case uint32:
		return NumberValue(float64(x))
	case uint64:
		return NumberValue(float64(x))
	case float32:
		return NumberValue(float64(x))
	case float64:
		return NumberValue(x)
	case string:
		return StringValue(x)
	case []Value:
		return SequenceValue(x)
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = FromAny(item)
		}
		return SequenceValue(items)
	case []string:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = StringValue(item)
		}
		return SequenceValue(items)
	case map[string]Value:
		return MappingValue(x)
	case map[string]any:
		entries := make(map[string]Value, len(x))
		for k, item := range x {
			entries[k] = FromAny(item)
		}
		return MappingValue(entries)
	case map[string]string:
		entries := make(map[string]Value, len(x))
		for k, item := range x {
			entries[k] = StringValue(item)
		}
		return MappingValue(entries)
	case ObjectHandle:
		return ObjectValue(x)
	default:
		return StringValue(fmt.Sprintf("%v", x))
	}
}

// ToAny converts a Value back to a native Go value. Object handles that
// implement PropertyLister become maps of their listed properties; other
// handles become nil.
func ToAny(v Value) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = ToAny(item)
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.m))
		for k, item := range v.m {
			out[k] = ToAny(item)
		}
		return out
	case KindObject:
		lister, ok := v.obj.(PropertyLister)
		if !ok {
			return nil
		}
		names := lister.PropertyNames()
		sort.Strings(names)
		out := make(map[string]any, len(names))
		for _, name := range names {
			prop, found := v.obj.GetProperty(name)
			if found {
				out[name] = ToAny(prop)
			}
		}
		return out
	default:
		return nil
	}
}
