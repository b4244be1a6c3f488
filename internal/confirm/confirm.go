// Package confirm keeps the pending delete confirmations that let the
// two-step product deletion span separate HTTP requests.
package confirm

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store issues one-time tokens bound to a product.
type Store interface {
	Issue(ctx context.Context, productID string) (string, error)
	// Verify reports whether token is the pending confirmation for productID.
	// The confirmation stays pending until Revoke.
	Verify(ctx context.Context, productID, token string) (bool, error)
	Revoke(ctx context.Context, productID string) error
}

type pending struct {
	token   string
	expires time.Time
}

// MemoryStore is used when no Redis address is configured.
type MemoryStore struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]pending
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]pending),
	}
}

func (s *MemoryStore) Issue(ctx context.Context, productID string) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[productID] = pending{token: token, expires: s.now().Add(s.ttl)}
	return token, nil
}

func (s *MemoryStore) Verify(ctx context.Context, productID, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.entries[productID]
	if !ok {
		return false, nil
	}
	if s.now().After(p.expires) {
		delete(s.entries, productID)
		return false, nil
	}
	return token != "" && p.token == token, nil
}

func (s *MemoryStore) Revoke(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, productID)
	return nil
}
