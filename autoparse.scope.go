package autoparse

import (
	"net/http"
	"sync"
)

// Scope is the request-scoped collaborator bundle a buffer is resolved
// against: the five string-keyed request stores, the local registry, and the
// named-global namespace. Stores are passed explicitly rather than held as
// ambient state, so concurrent request handling is safe by construction:
// each request gets its own Scope.
type Scope struct {
	mu      sync.RWMutex
	query   map[string]Value
	form    map[string]Value
	cookies map[string]Value
	server  map[string]Value

	session  SessionStore
	registry *Registry
	globals  *Globals
}

// NewScope creates a scope with empty request stores, an in-memory session
// store, a fresh local registry, and a global namespace carrying the built-in
// free functions.
func NewScope() *Scope {
	return &Scope{
		query:    make(map[string]Value),
		form:     make(map[string]Value),
		cookies:  make(map[string]Value),
		server:   make(map[string]Value),
		session:  NewMemorySessionStore(),
		registry: NewRegistry(),
		globals:  NewGlobals(),
	}
}

// ScopeFromRequest builds a scope from an incoming HTTP request: query
// parameters, posted form fields, cookies, and CGI-style server variables.
// Repeated parameters keep their first value. The given session store is
// attached as-is; pass nil for a fresh in-memory store.
func ScopeFromRequest(r *http.Request, session SessionStore) (*Scope, error) {
	scope := NewScope()
	if session != nil {
		scope.session = session
	}

	if err := r.ParseForm(); err != nil {
		return nil, NewScopeRequestError(err)
	}

	for name, vals := range r.URL.Query() {
		if len(vals) > 0 {
			scope.SetQueryParam(name, String(vals[0]))
		}
	}
	for name, vals := range r.PostForm {
		if len(vals) > 0 {
			scope.SetFormParam(name, String(vals[0]))
		}
	}
	for _, c := range r.Cookies() {
		scope.SetCookie(c.Name, String(c.Value))
	}

	scope.SetServerVar(ServerKeyRequestMethod, String(r.Method))
	scope.SetServerVar(ServerKeyRequestURI, String(r.URL.RequestURI()))
	scope.SetServerVar(ServerKeyQueryString, String(r.URL.RawQuery))
	scope.SetServerVar(ServerKeyHTTPHost, String(r.Host))
	scope.SetServerVar(ServerKeyHTTPUserAgent, String(r.UserAgent()))
	scope.SetServerVar(ServerKeyHTTPReferer, String(r.Referer()))
	scope.SetServerVar(ServerKeyRemoteAddr, String(r.RemoteAddr))
	scope.SetServerVar(ServerKeyServerProtocol, String(r.Proto))

	return scope, nil
}

// SetQueryParam sets a query-parameter value.
func (s *Scope) SetQueryParam(name string, v Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query[name] = v
}

// SetFormParam sets a form-parameter value.
func (s *Scope) SetFormParam(name string, v Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form[name] = v
}

// SetCookie sets a cookie value.
func (s *Scope) SetCookie(name string, v Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookies[name] = v
}

// SetServerVar sets a server-map value.
func (s *Scope) SetServerVar(name string, v Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.server[name] = v
}

// UseSession replaces the scope's session store.
func (s *Scope) UseSession(store SessionStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if store != nil {
		s.session = store
	}
}

// Session returns the scope's session store.
func (s *Scope) Session() SessionStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Registry returns the scope's local registry.
func (s *Scope) Registry() *Registry {
	return s.registry
}

// Globals returns the scope's named-global namespace.
func (s *Scope) Globals() *Globals {
	return s.globals
}

// QueryParams returns a copy of the query-parameter store.
func (s *Scope) QueryParams() map[string]Value {
	return s.copyStore(s.query)
}

// FormParams returns a copy of the form-parameter store.
func (s *Scope) FormParams() map[string]Value {
	return s.copyStore(s.form)
}

// Cookies returns a copy of the cookie store.
func (s *Scope) Cookies() map[string]Value {
	return s.copyStore(s.cookies)
}

// ServerVars returns a copy of the server-map store.
func (s *Scope) ServerVars() map[string]Value {
	return s.copyStore(s.server)
}

// SessionValues returns a copy of the session entries.
func (s *Scope) SessionValues() map[string]Value {
	return s.Session().Values()
}

// RemoveSessionKey deletes a session key. This is the engine's single write
// path into any store, used by the unset post-processor.
func (s *Scope) RemoveSessionKey(key string) bool {
	return s.Session().Remove(key)
}

// RegistryValues returns a copy of the local registry contents.
func (s *Scope) RegistryValues() map[string]Value {
	return s.registry.Values()
}

// Global looks up a named global value.
func (s *Scope) Global(name string) (Value, bool) {
	return s.globals.Value(name)
}

// HasFunc checks if a free function is registered.
func (s *Scope) HasFunc(name string) bool {
	return s.globals.HasFunc(name)
}

// CallFunc invokes a free function by name.
func (s *Scope) CallFunc(name string, args []Value) (Value, error) {
	return s.globals.CallFunc(name, args)
}

// copyStore returns a copy of one request store under the read lock.
func (s *Scope) copyStore(store map[string]Value) map[string]Value {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Value, len(store))
	for k, v := range store {
		out[k] = v
	}
	return out
}
