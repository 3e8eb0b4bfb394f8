package internal

// Sources is the collaborator bundle a resolver reads from. It is
// request-scoped: one Sources instance per resolution pass, no cross-request
// state. Snapshot methods return the store contents as plain maps; the only
// write path is RemoveSessionKey, used by the unset post-processor.
type Sources interface {
	QueryParams() map[string]Value
	FormParams() map[string]Value
	Cookies() map[string]Value
	ServerVars() map[string]Value

	SessionValues() map[string]Value
	RemoveSessionKey(key string) bool

	RegistryValues() map[string]Value

	// Global looks up a named global value.
	Global(name string) (Value, bool)

	// HasFunc and CallFunc expose the free-function namespace used by call
	// accessors that have no object context.
	HasFunc(name string) bool
	CallFunc(name string, args []Value) (Value, error)
}

// resolveSource maps a leading path segment to a value from the fixed set of
// collaborator stores. Unrecognized identifiers fall back to a named-global
// lookup, which yields Null when absent.
func (r *Resolver) resolveSource(name string) Value {
	switch name {
	case SourceSession:
		return MappingValue(r.sources.SessionValues())
	case SourcePost:
		return MappingValue(r.sources.FormParams())
	case SourceGet:
		return MappingValue(r.sources.QueryParams())
	case SourceCookie:
		return MappingValue(r.sources.Cookies())
	case SourceServer:
		return MappingValue(r.sources.ServerVars())
	case SourceRegistry:
		return MappingValue(r.sources.RegistryValues())
	default:
		if v, ok := r.sources.Global(name); ok {
			return v
		}
		return NullValue()
	}
}
