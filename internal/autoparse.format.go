package internal

import (
	"fmt"
	"html"
	"strconv"
)

// Format renders a value to its substitution text. When sanitize is true
// (the default for every tag without the raw marker) the rendered string is
// HTML-escaped before substitution.
func Format(v Value, sanitize bool) string {
	out := Render(v)
	if sanitize {
		out = html.EscapeString(out)
	}
	return out
}

// Render produces the natural string form of a value. Scalars use their
// plain text rendering; sequences, mappings and object handles use a stable
// debug-oriented dump not guaranteed to be machine-parseable.
func Render(v Value) string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		if v.b {
			return BoolTrueText
		}
		return BoolFalseText
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	default:
		// fmt prints map keys in sorted order, which keeps the dump stable.
		return fmt.Sprintf("%v", dumpTarget(v))
	}
}

// dumpTarget picks what fmt should print for a structured value. Object
// handles that enumerate their properties dump as maps; opaque handles dump
// as themselves.
func dumpTarget(v Value) any {
	if v.kind == KindObject {
		if _, ok := v.obj.(PropertyLister); !ok {
			return v.obj
		}
	}
	return ToAny(v)
}
