package internal

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// applyPostProcessor applies a single named terminal transform to a resolved
// value. It only runs when the walk succeeded; an empty name passes the value
// through unchanged, and unrecognized names fail soft to the empty string.
func (r *Resolver) applyPostProcessor(name string, value Value, source string, accessors []string) Value {
	switch name {
	case "":
		return value

	case PostProcJSON:
		return StringValue(r.encodeJSON(value, false))

	case PostProcPJSON, PostProcJSONP, PostProcPrettyJSON, PostProcJSONDashP, PostProcPrettyDash:
		return StringValue(r.encodeJSON(value, true))

	case PostProcLength:
		if value.Kind() == KindString {
			return StringValue(strconv.Itoa(len(value.AsString())))
		}
		return StringValue("")

	case PostProcCount:
		if n, ok := value.Len(); ok {
			return StringValue(strconv.Itoa(n))
		}
		return StringValue("")

	case PostProcUpper:
		if value.Kind() == KindString {
			return StringValue(strings.ToUpper(value.AsString()))
		}
		return StringValue("")

	case PostProcLower:
		if value.Kind() == KindString {
			return StringValue(strings.ToLower(value.AsString()))
		}
		return StringValue("")

	case PostProcUnset:
		// Write access is deliberately narrow: session source only, exactly
		// one remaining path segment.
		if source == SourceSession && len(accessors) == 1 {
			r.sources.RemoveSessionKey(strings.TrimSpace(accessors[0]))
		}
		return StringValue("")

	default:
		r.logger.Debug(LogMsgUnknownPostProc, zap.String(LogFieldPostProc, name))
		return StringValue("")
	}
}

// encodeJSON renders a value as JSON without escaping unicode or slashes.
// Encoding failures fail soft to the empty string.
func (r *Resolver) encodeJSON(value Value, pretty bool) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", JSONIndent)
	}

	if err := enc.Encode(ToAny(value)); err != nil {
		r.logger.Debug(LogMsgJSONEncodeFailed, zap.Error(err))
		return ""
	}

	// Encode appends a trailing newline the substitution must not carry.
	return strings.TrimSuffix(buf.String(), string(CharNewline))
}
