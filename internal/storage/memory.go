// Package storage provides favourite-recipe store implementations.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/logger"
)

// Compile-time interface check.
var _ domain.FavouriteStore = (*MemoryStore)(nil)

// MemoryStore keeps favourites in memory, in the order they were saved.
// Safe for concurrent access. Nothing survives a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	saved map[string]domain.Recipe
	log   *logger.Logger
}

// NewMemoryStore creates an empty favourites store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		saved: make(map[string]domain.Recipe),
		log:   log,
	}
}

// Save adds a recipe. Saving the same id twice returns ErrAlreadyExists.
func (s *MemoryStore) Save(ctx context.Context, recipe domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.saved[recipe.ID]; ok {
		return fmt.Errorf("favourite %s: %w", recipe.ID, domain.ErrAlreadyExists)
	}
	s.saved[recipe.ID] = recipe
	s.order = append(s.order, recipe.ID)
	s.log.Debug("saved favourite %s (%s)", recipe.ID, recipe.Name)
	return nil
}

// Remove deletes a favourite by ID.
func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.saved[id]; !ok {
		return fmt.Errorf("favourite %s: %w", id, domain.ErrNotFound)
	}
	delete(s.saved, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.log.Debug("removed favourite %s", id)
	return nil
}

// Has reports whether id is saved.
func (s *MemoryStore) Has(ctx context.Context, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.saved[id]
	return ok
}

// List returns favourites oldest first.
func (s *MemoryStore) List(ctx context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Recipe, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.saved[id])
	}
	s.log.Debug("listing favourites, count=%d", len(out))
	return out, nil
}
