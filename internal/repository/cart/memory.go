package cart

import (
	"context"
	"sync"

	"perfume-storefront/internal/domain"
)

// MemoryStore keeps carts in process memory. Used when no Redis is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]domain.CartLine)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	lines := s.carts[sessionID]
	s.mu.RUnlock()

	c := &domain.Cart{}
	if len(lines) > 0 {
		c.Lines = make([]domain.CartLine, len(lines))
		copy(c.Lines, lines)
	}
	return c, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, c *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == nil || c.IsEmpty() {
		delete(s.carts, sessionID)
		return nil
	}
	s.carts[sessionID] = c.Snapshot()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}
