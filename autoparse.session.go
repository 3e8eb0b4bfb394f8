package autoparse

import (
	"sync"
)

// SessionStore is the session-map collaborator: a string-keyed value store
// with request lifetime from the engine's perspective. It is the only store
// the engine ever writes to, through the unset post-processor's Remove path.
// Implementations must be safe for concurrent use.
type SessionStore interface {
	// Get retrieves a session value by key.
	Get(key string) (Value, bool)

	// Set stores a session value.
	Set(key string, value Value)

	// Remove deletes a key. Returns true if the key existed.
	Remove(key string) bool

	// Values returns a copy of all session entries.
	Values() map[string]Value

	// Close releases backend resources. Subsequent calls return an error.
	Close() error
}

// SessionDriver creates SessionStore instances for one backend.
type SessionDriver interface {
	// Open creates a store bound to one session ID. The connection string
	// format is driver-specific and may be empty.
	Open(connectionString string, sessionID string) (SessionStore, error)
}

var (
	sessionDriversMu sync.RWMutex
	sessionDrivers   = make(map[string]SessionDriver)
)

// RegisterSessionDriver registers a session driver by name.
// Registering a duplicate name panics, matching database/sql semantics.
func RegisterSessionDriver(name string, driver SessionDriver) {
	sessionDriversMu.Lock()
	defer sessionDriversMu.Unlock()

	if _, exists := sessionDrivers[name]; exists {
		panic(NewDuplicateDriverError(name))
	}
	sessionDrivers[name] = driver
}

// OpenSession opens a session store through a registered driver.
func OpenSession(driverName string, connectionString string, sessionID string) (SessionStore, error) {
	sessionDriversMu.RLock()
	driver, ok := sessionDrivers[driverName]
	sessionDriversMu.RUnlock()

	if !ok {
		return nil, NewUnknownSessionDriverError(driverName)
	}
	return driver.Open(connectionString, sessionID)
}

// MemorySessionStore is an in-memory SessionStore. It is the default for new
// scopes and the usual choice for tests; all data is lost when the process
// terminates.
type MemorySessionStore struct {
	mu     sync.RWMutex
	values map[string]Value
	closed bool
}

// MemorySessionDriver creates MemorySessionStore instances.
type MemorySessionDriver struct{}

func init() {
	RegisterSessionDriver(SessionDriverNameMemory, &MemorySessionDriver{})
}

// Open creates a new MemorySessionStore.
// The connection string and session ID are ignored for memory storage.
func (d *MemorySessionDriver) Open(connectionString string, sessionID string) (SessionStore, error) {
	return NewMemorySessionStore(), nil
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		values: make(map[string]Value),
	}
}

// Get retrieves a session value by key.
func (s *MemorySessionStore) Get(key string) (Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return Null(), false
	}
	v, ok := s.values[key]
	return v, ok
}

// Set stores a session value. Writes on a closed store are dropped.
func (s *MemorySessionStore) Set(key string, value Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.values[key] = value
}

// Remove deletes a key. Returns true if the key existed.
func (s *MemorySessionStore) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	_, ok := s.values[key]
	delete(s.values, key)
	return ok
}

// Values returns a copy of all session entries.
func (s *MemorySessionStore) Values() map[string]Value {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Value, len(s.values))
	if s.closed {
		return out
	}
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Close marks the store closed. A second Close returns an error.
func (s *MemorySessionStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewSessionClosedError()
	}
	s.closed = true
	s.values = nil
	return nil
}
