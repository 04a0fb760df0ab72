package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
)

// Store is the recipe data source the service reads from.
type Store interface {
	ListRecipes(ctx context.Context) ([]recipe.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (recipe.Recipe, error)
}

// Service holds all dependencies for the recipe service layer.
type Service struct {
	store     Store
	threshold float64
}

// New creates a new Service. threshold is the minimum title similarity Find
// accepts.
func New(store Store, threshold float64) *Service {
	return &Service{store: store, threshold: threshold}
}

// Store exposes the underlying Store for handlers that don't require
// service-layer logic.
func (s *Service) Store() Store {
	return s.store
}
