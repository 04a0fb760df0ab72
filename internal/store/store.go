package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
)

var ErrNotFound = errors.New("recipe not found")

// ErrInvalidServings is returned by Load for a negative serving count. Zero
// means the recipe has no serving count.
var ErrInvalidServings = errors.New("servings must not be negative")

// Memory is an in-memory recipe store. Recipes are listed in insertion order.
type Memory struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]recipe.Recipe
}

func NewMemory(recipes ...recipe.Recipe) *Memory {
	m := &Memory{byID: make(map[uuid.UUID]recipe.Recipe, len(recipes))}
	for _, r := range recipes {
		m.Put(r)
	}
	return m
}

// Put inserts or replaces a recipe. A recipe with a nil ID is given a new one.
func (m *Memory) Put(r recipe.Recipe) recipe.Recipe {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.byID[r.ID] = r
	return r
}

func (m *Memory) ListRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]recipe.Recipe, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

func (m *Memory) GetRecipe(ctx context.Context, id uuid.UUID) (recipe.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return recipe.Recipe{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.byID[id]
	if !ok {
		return recipe.Recipe{}, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	}
	return r, nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}
