// Package recipe provides recipe source implementations.
package recipe

import (
	"context"
	"fmt"
	"sync"

	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// Option configures a MemorySource.
type Option func(*MemorySource)

// WithRecipes replaces the built-in seed with the given collection.
func WithRecipes(recipes []domain.Recipe) Option {
	return func(s *MemorySource) {
		s.initial = recipes
		s.custom = true
	}
}

// WithType keeps only recipes of the given type. Applied to the seed and
// to every later Replace.
func WithType(t domain.RecipeType) Option {
	return func(s *MemorySource) {
		s.only = &t
	}
}

// MemorySource holds recipes in memory in a stable order. Safe for
// concurrent reads; Replace swaps the whole collection at once.
type MemorySource struct {
	mu      sync.RWMutex
	recipes []domain.Recipe
	byID    map[string]int
	version uint64
	only    *domain.RecipeType
	initial []domain.Recipe
	custom  bool
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with built-in recipes
// unless WithRecipes says otherwise.
func NewMemorySource(log *logger.Logger, opts ...Option) *MemorySource {
	src := &MemorySource{log: log}
	for _, opt := range opts {
		opt(src)
	}

	initial := src.initial
	if !src.custom {
		initial = Seed()
	}
	src.initial = nil
	if err := src.Replace(initial); err != nil {
		// Duplicate ids in caller-provided data; keep what we can.
		src.log.Warn("recipe source: %v", err)
	}
	return src
}

// List returns every recipe in collection order.
func (s *MemorySource) List(ctx context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing all recipes, count=%d", len(s.recipes))

	out := make([]domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

// Get returns a recipe by ID.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}
	r := s.recipes[i]
	return &r, nil
}

// Version identifies the current collection. It changes on every Replace.
func (s *MemorySource) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Replace swaps in a new collection. Invalid records are skipped and a
// repeated id keeps its first occurrence; both are reported in the error
// while the rest of the collection is still installed.
func (s *MemorySource) Replace(recipes []domain.Recipe) error {
	kept := make([]domain.Recipe, 0, len(recipes))
	byID := make(map[string]int, len(recipes))
	var problems []error

	for _, r := range recipes {
		if err := r.Validate(); err != nil {
			problems = append(problems, err)
			continue
		}
		if s.only != nil && r.Type != *s.only {
			continue
		}
		if _, dup := byID[r.ID]; dup {
			problems = append(problems, fmt.Errorf("recipe %s: %w", r.ID, domain.ErrAlreadyExists))
			continue
		}
		byID[r.ID] = len(kept)
		kept = append(kept, r)
	}

	s.mu.Lock()
	s.recipes = kept
	s.byID = byID
	s.version++
	v := s.version
	s.mu.Unlock()

	s.log.Info("recipe source: loaded %d recipes (v%d)", len(kept), v)

	switch len(problems) {
	case 0:
		return nil
	case 1:
		return problems[0]
	default:
		return fmt.Errorf("%w (and %d more)", problems[0], len(problems)-1)
	}
}
