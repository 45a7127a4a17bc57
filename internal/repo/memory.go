package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Skotchmaster/demo_api/internal/models"
)

type MemoryStore[T models.Keyed] struct {
	mu     sync.RWMutex
	items  []T
	lastID int
}

func NewMemoryStore[T models.Keyed](seed ...T) *MemoryStore[T] {
	s := &MemoryStore[T]{items: make([]T, 0, len(seed))}
	for _, rec := range seed {
		s.items = append(s.items, rec)
		s.lastID = max(s.lastID, rec.Key())
	}
	return s
}

func (s *MemoryStore[T]) NextID(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	maxExisting := 0
	for _, rec := range s.items {
		maxExisting = max(maxExisting, rec.Key())
	}
	return nextID(s.lastID, maxExisting), nil
}

func (s *MemoryStore[T]) Insert(_ context.Context, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := (*rec).Key()
	if s.findIndex(id) >= 0 {
		return fmt.Errorf("insert %d: %w", id, ErrDuplicateID)
	}
	s.items = append(s.items, *rec)
	s.lastID = max(s.lastID, id)
	return nil
}

func (s *MemoryStore[T]) FindByID(_ context.Context, id int) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	rec := s.items[i]
	return &rec, nil
}

func (s *MemoryStore[T]) Update(_ context.Context, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findIndex((*rec).Key())
	if i < 0 {
		return ErrNotFound
	}
	s.items[i] = *rec
	return nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, id int) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	removed := s.removeAt(i)
	return &removed, nil
}

func (s *MemoryStore[T]) All(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items), nil
}

// findIndex and removeAt expect s.mu to be held.
func (s *MemoryStore[T]) findIndex(id int) int {
	return slices.IndexFunc(s.items, func(rec T) bool { return rec.Key() == id })
}

func (s *MemoryStore[T]) removeAt(i int) T {
	removed := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return removed
}
