package repos

import (
	"sync"

	"shopd/internal/domain"
)

// CartStore persists one cart per session id. Get creates an empty cart on
// first access. Save replaces the whole cart; concurrent writers to the same
// session are last-write-wins (there is no compare-and-swap here, and callers
// should not assume one).
type CartStore interface {
	Get(sessionID string) ([]domain.CartLine, error)
	Save(sessionID string, lines []domain.CartLine) error
	Clear(sessionID string) error
}

// MemoryCartStore is the default CartStore: a process-local map guarded by a
// RWMutex. Nothing survives a restart, which is all this system promises.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartLine
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string][]domain.CartLine)}
}

func (s *MemoryCartStore) Get(sessionID string) ([]domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, ok := s.carts[sessionID]
	if !ok {
		s.carts[sessionID] = []domain.CartLine{}
		return []domain.CartLine{}, nil
	}
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *MemoryCartStore) Save(sessionID string, lines []domain.CartLine) error {
	cp := make([]domain.CartLine, len(lines))
	copy(cp, lines)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = cp
	return nil
}

func (s *MemoryCartStore) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = []domain.CartLine{}
	return nil
}
