package revocation

import (
	"context"
	"sync"
	"time"
)

// InMemoryTRL is a process-local token revocation list. Suitable for a single
// instance; use RedisTRL when several instances share revocation state.
type InMemoryTRL struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewInMemoryTRL() *InMemoryTRL {
	return &InMemoryTRL{revoked: make(map[string]time.Time)}
}

func (t *InMemoryTRL) RevokeToken(_ context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (t *InMemoryTRL) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	t.mu.RLock()
	expiry, ok := t.revoked[tokenID]
	t.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if time.Now().After(expiry) {
		t.mu.Lock()
		delete(t.revoked, tokenID)
		t.mu.Unlock()
		return false, nil
	}
	return true, nil
}
