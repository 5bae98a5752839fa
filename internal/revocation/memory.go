package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryRegistry is a mutex-guarded in-process registry used in tests and in
// redis-less development runs. Sweep drops entries whose token has expired
// anyway; the scheduler calls it periodically.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{entries: make(map[string]time.Time)}
}

func (r *MemoryRegistry) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[jti] = time.Now().Add(ttl)
	return nil
}

func (r *MemoryRegistry) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[jti]
	return ok, nil
}

// Sweep removes entries whose implied expiry has passed and returns how many
// were dropped.
func (r *MemoryRegistry) Sweep() int {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for jti, expiresAt := range r.entries {
		if expiresAt.Before(now) {
			delete(r.entries, jti)
			removed++
		}
	}
	return removed
}
