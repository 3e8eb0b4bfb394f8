package internal

// Tag delimiter constants - the <path::post~/> syntax
const (
	TagOpenChar   = '<'
	TagCloseSeq   = "/>"
	RawMarkerChar = '~'
	PostProcSep   = "::"
)

// Character constants used across the scanner and tokenizer
const (
	CharColon       = ':'
	CharComma       = ','
	CharOpenParen   = '('
	CharCloseParen  = ')'
	CharSingleQuote = '\''
	CharDoubleQuote = '"'
	CharBackslash   = '\\'
	CharUnderscore  = '_'
	CharHyphen      = '-'
	CharDot         = '.'
	CharSpace       = ' '
	CharTab         = '\t'
	CharNewline     = '\n'
	CharCarriageRet = '\r'
)

// Source selector keywords - fixed mapping to collaborator stores.
// Any other identifier falls back to a named-global lookup.
const (
	SourceSession  = "session"
	SourcePost     = "post"
	SourceGet      = "get"
	SourceCookie   = "cookie"
	SourceServer   = "server"
	SourceRegistry = "registry"
)

// Post-processor names
const (
	PostProcJSON       = "json"
	PostProcPJSON      = "pjson"
	PostProcJSONP      = "jsonp"
	PostProcPrettyJSON = "prettyjson"
	PostProcJSONDashP  = "json-p"
	PostProcPrettyDash = "pretty-json"
	PostProcLength     = "length"
	PostProcCount      = "count"
	PostProcUpper      = "upper"
	PostProcLower      = "lower"
	PostProcUnset      = "unset"
)

// Literal keywords recognized by the argument tokenizer (case-insensitive)
const (
	LiteralTrue  = "true"
	LiteralFalse = "false"
	LiteralNull  = "null"
)

// Rendering constants
const (
	BoolTrueText  = "1"
	BoolFalseText = ""
	JSONIndent    = "  "
)

// Resolution limit defaults
const (
	DefaultMaxTagLength = 512
	DefaultMaxRefDepth  = 16
)

// Log message constants
const (
	LogMsgResolverCreated  = "resolver created"
	LogMsgBufferResolved   = "buffer resolved"
	LogMsgTagResolved      = "tag resolved"
	LogMsgLookupFailed     = "tag lookup failed"
	LogMsgUnknownPostProc  = "unknown post-processor"
	LogMsgRefDepthExceeded = "variable reference depth exceeded"
	LogMsgJSONEncodeFailed = "json encoding failed"
)

// Log field constants
const (
	LogFieldPath       = "path"
	LogFieldSource     = "source"
	LogFieldSegment    = "segment"
	LogFieldPostProc   = "post_processor"
	LogFieldTags       = "tags"
	LogFieldBufferSize = "buffer_size"
)

// Error message constants for the fail-soft lookup path
const (
	ErrMsgLookupFailed   = "path segment lookup failed"
	ErrMsgMethodRejected = "method invocation failed"
	ErrMsgNoCallTarget   = "no object context or free function for call"
	ErrFmtSegmentMessage = "%s: %s"
)
