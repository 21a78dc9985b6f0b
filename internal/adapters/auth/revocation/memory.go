// Package revocation tiene deny-lists de ids de token de sesión.
package revocation

import (
	"context"
	"sync"
	"time"
)

// Memory guarda los ids revocados en proceso. Sirve solo con una instancia.
type Memory struct {
	mu  sync.Mutex
	ids map[string]time.Time
	now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		ids: make(map[string]time.Time),
		now: time.Now,
	}
}

func (m *Memory) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 || tokenID == "" {
		return nil
	}
	m.mu.Lock()
	m.ids[tokenID] = m.now().Add(ttl)
	m.mu.Unlock()
	return nil
}

func (m *Memory) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.ids[tokenID]
	if !ok {
		return false, nil
	}
	if m.now().After(expiry) {
		delete(m.ids, tokenID)
		return false, nil
	}
	return true, nil
}
