package autoparse

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
)

// Registry is the local-variable registry: an ephemeral token-to-value store
// used to expose non-global values to tag resolution. Registration returns an
// opaque token the host embeds into its output as <registry:TOKEN/>; the
// engine only ever reads from the registry.
type Registry struct {
	mu     sync.RWMutex
	values map[string]Value
}

// NewRegistry creates an empty local registry.
func NewRegistry() *Registry {
	return &Registry{
		values: make(map[string]Value),
	}
}

// Register stores a value and returns its opaque token.
func (r *Registry) Register(v Value) string {
	token := RegistryTokenPrefix + randomToken()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[token] = v
	return token
}

// Get retrieves a registered value by token.
func (r *Registry) Get(token string) (Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[token]
	return v, ok
}

// Values returns a copy of the registry contents.
func (r *Registry) Values() map[string]Value {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Value, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Count returns the number of registered values.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.values)
}

// randomToken generates a URL-safe random token suffix.
func randomToken() string {
	buf := make([]byte, RegistryTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read failing means the platform RNG is broken; there is no
		// reasonable fallback for an unguessable token.
		panic(ErrMsgCryptoRandFailure)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
