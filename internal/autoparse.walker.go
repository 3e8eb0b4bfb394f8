package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// LookupError reports a path segment that could not be resolved against the
// current value. It short-circuits the remaining accessors and suppresses
// post-processing; the tag substitution becomes the empty string.
type LookupError struct {
	Message string
	Segment string
}

// Error implements the error interface
func (e *LookupError) Error() string {
	return fmt.Sprintf(ErrFmtSegmentMessage, e.Message, e.Segment)
}

// newLookupError creates a lookup failure for the given segment
func newLookupError(message, segment string) *LookupError {
	return &LookupError{Message: message, Segment: segment}
}

// walk applies each accessor in order against the current value, performing
// key lookup or call invocation. depth tracks nesting through variable
// references inside argument lists.
func (r *Resolver) walk(cur Value, accessors []string, depth int) (Value, error) {
	for _, raw := range accessors {
		seg := strings.TrimSpace(raw)

		name, rawArgs, isCall := parseAccessor(seg)
		if isCall {
			args := r.tokenizeArgs(rawArgs, depth)
			next, err := r.invoke(cur, name, args)
			if err != nil {
				return NullValue(), err
			}
			cur = next
			continue
		}

		next, ok := lookupKey(cur, seg)
		if !ok {
			return NullValue(), newLookupError(ErrMsgLookupFailed, seg)
		}
		cur = next
	}
	return cur, nil
}

// parseAccessor decides whether a segment is a call. A segment is a call iff
// it has the shape identifier(...) where the opening parenthesis is closed by
// the segment's final byte and never earlier.
func parseAccessor(seg string) (name string, rawArgs string, isCall bool) {
	open := strings.IndexByte(seg, CharOpenParen)
	if open <= 0 || seg[len(seg)-1] != CharCloseParen {
		return seg, "", false
	}
	if !isIdentifier(seg[:open]) {
		return seg, "", false
	}

	// The trailing parenthesis must balance the opening one: depth may only
	// return to zero at the very end.
	depth := 0
	for i := open; i < len(seg); i++ {
		switch seg[i] {
		case CharOpenParen:
			depth++
		case CharCloseParen:
			depth--
			if depth == 0 && i != len(seg)-1 {
				return seg, "", false
			}
		}
	}
	if depth != 0 {
		return seg, "", false
	}

	return seg[:open], seg[open+1 : len(seg)-1], true
}

// isIdentifier reports whether s is a plain identifier: a letter or
// underscore followed by letters, digits, underscores or hyphens.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch == CharUnderscore:
		case i > 0 && ch >= '0' && ch <= '9':
		case i > 0 && ch == CharHyphen:
		default:
			return false
		}
	}
	return true
}

// lookupKey advances from cur through a key accessor: map entry, sequence
// index, or object property.
func lookupKey(cur Value, key string) (Value, bool) {
	switch cur.Kind() {
	case KindMapping:
		v, ok := cur.m[key]
		return v, ok
	case KindSequence:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(cur.seq) {
			return NullValue(), false
		}
		return cur.seq[idx], true
	case KindObject:
		return cur.obj.GetProperty(key)
	default:
		return NullValue(), false
	}
}

// invoke executes a call accessor. Object handles dispatch to their own
// methods; a Null current value (no object context yet) dispatches to the
// free-function namespace. Anything else is a lookup failure.
func (r *Resolver) invoke(cur Value, name string, args []Value) (Value, error) {
	switch {
	case cur.Kind() == KindObject:
		result, err := cur.obj.CallMethod(name, args)
		if err != nil {
			return NullValue(), newLookupError(ErrMsgMethodRejected, name)
		}
		return result, nil

	case cur.IsNull() && r.sources.HasFunc(name):
		result, err := r.sources.CallFunc(name, args)
		if err != nil {
			return NullValue(), newLookupError(ErrMsgMethodRejected, name)
		}
		return result, nil

	default:
		return NullValue(), newLookupError(ErrMsgNoCallTarget, name)
	}
}
