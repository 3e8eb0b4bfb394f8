package internal

import (
	"strconv"
	"strings"
)

// tokenizeArgs parses a call's raw argument-list string into values.
// Splitting happens on commas outside matched quote pairs only; each token is
// trimmed and classified as a string literal, variable reference, numeric
// literal, boolean literal, null literal, or (silently) Null when none match.
// Variable references are resolved eagerly before the enclosing call runs.
func (r *Resolver) tokenizeArgs(raw string, depth int) []Value {
	tokens := splitArgList(raw)
	if tokens == nil {
		return nil
	}

	args := make([]Value, len(tokens))
	for i, tok := range tokens {
		args[i] = r.classifyArg(tok, depth)
	}
	return args
}

// splitArgList splits raw on top-level commas. Single and double quotes are
// tracked independently, so a ' does not close a "-opened string, and escaped
// quotes inside a string do not terminate it. Empty raw input yields nil.
func splitArgList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var parts []string
	var sb strings.Builder
	var quote byte

	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case quote != 0:
			if ch == CharBackslash && i+1 < len(raw) {
				sb.WriteByte(ch)
				i++
				sb.WriteByte(raw[i])
				continue
			}
			sb.WriteByte(ch)
			if ch == quote {
				quote = 0
			}
		case ch == CharSingleQuote || ch == CharDoubleQuote:
			quote = ch
			sb.WriteByte(ch)
		case ch == CharComma:
			parts = append(parts, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(ch)
		}
	}
	parts = append(parts, sb.String())
	return parts
}

// classifyArg turns one trimmed token into a Value. Unrecognized tokens are
// not an error; they become Null.
func (r *Resolver) classifyArg(token string, depth int) Value {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return NullValue()
	}

	if isQuoteWrapped(tok) {
		return StringValue(unescapeString(tok[1 : len(tok)-1]))
	}

	if isVarRef(tok) {
		return r.resolveVarRef(tok, depth)
	}

	if n, err := strconv.ParseFloat(tok, 64); err == nil {
		return NumberValue(n)
	}

	switch strings.ToLower(tok) {
	case LiteralTrue:
		return BoolValue(true)
	case LiteralFalse:
		return BoolValue(false)
	case LiteralNull:
		return NullValue()
	}

	return NullValue()
}

// isQuoteWrapped reports whether tok is fully wrapped in one matched quote
// pair of the same type.
func isQuoteWrapped(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	first, last := tok[0], tok[len(tok)-1]
	if first != CharSingleQuote && first != CharDoubleQuote {
		return false
	}
	return first == last
}

// isVarRef reports whether tok looks like source:path, with a source of
// lowercase letters only.
func isVarRef(tok string) bool {
	idx := strings.IndexByte(tok, CharColon)
	if idx <= 0 || idx == len(tok)-1 {
		return false
	}
	for i := 0; i < idx; i++ {
		if tok[i] < 'a' || tok[i] > 'z' {
			return false
		}
	}
	return true
}

// resolveVarRef resolves a source:path reference found inside an argument
// list through the same source resolver and path walker used for tags.
// Any failure, including exceeding the reference depth cap, yields Null.
func (r *Resolver) resolveVarRef(ref string, depth int) Value {
	if depth >= r.config.MaxRefDepth {
		r.logger.Debug(LogMsgRefDepthExceeded, logPath(ref))
		return NullValue()
	}

	segments := Split(ref, CharColon)
	if len(segments) == 0 {
		return NullValue()
	}

	cur := r.resolveSource(strings.TrimSpace(segments[0]))
	resolved, err := r.walk(cur, segments[1:], depth+1)
	if err != nil {
		return NullValue()
	}
	return resolved
}

// unescapeString resolves backslash escapes inside a quoted string literal.
// \n and \t become control characters; any other escaped byte stands for
// itself (covering \', \" and \\).
func unescapeString(s string) string {
	if !strings.ContainsRune(s, rune(CharBackslash)) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == CharBackslash && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				sb.WriteByte(CharNewline)
			case 't':
				sb.WriteByte(CharTab)
			default:
				sb.WriteByte(s[i])
			}
			continue
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}
