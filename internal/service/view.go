package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
	"github.com/mwhite7112/woodpantry-recipes/internal/scale"
)

// ErrUnscalable is returned when a different serving count is requested for
// a recipe that has no serving count of its own.
var ErrUnscalable = errors.New("recipe has no serving count to scale from")

// View is a recipe ready for display: canonical groups, ingredients scaled
// to Servings and steps carrying their global numbers.
type View struct {
	ID               uuid.UUID              `json:"id"`
	Title            string                 `json:"title"`
	Servings         int                    `json:"servings"`
	OriginalServings int                    `json:"original_servings"`
	Ingredients      []recipe.ContentGroup  `json:"ingredients"`
	Steps            []recipe.NumberedGroup `json:"steps"`
}

// View loads a recipe and prepares it for display at servings. A servings
// value of 0 means the recipe's own serving count.
func (s *Service) View(ctx context.Context, id uuid.UUID, servings int) (View, error) {
	if servings < 0 {
		return View{}, fmt.Errorf("servings %d: %w", servings, scale.ErrInvalidServings)
	}

	r, err := s.store.GetRecipe(ctx, id)
	if err != nil {
		return View{}, err
	}

	if servings == 0 {
		servings = r.Servings
	}

	ingredients := recipe.NormalizeGroups(r.Ingredients)
	if servings != r.Servings {
		if r.Servings < 1 {
			return View{}, fmt.Errorf("recipe %s: %w", r.ID, ErrUnscalable)
		}
		ingredients, err = ScaleGroups(ingredients, r.Servings, servings)
		if err != nil {
			return View{}, err
		}
	}

	return View{
		ID:               r.ID,
		Title:            r.Title,
		Servings:         servings,
		OriginalServings: r.Servings,
		Ingredients:      ingredients,
		Steps:            recipe.NumberSteps(recipe.NormalizeGroups(r.Steps)),
	}, nil
}

// ScaleGroups scales the items of every group, keeping titles and order.
func ScaleGroups(groups []recipe.ContentGroup, original, target int) ([]recipe.ContentGroup, error) {
	out := make([]recipe.ContentGroup, len(groups))
	for i, g := range groups {
		items, err := scale.Lines(g.Items, original, target)
		if err != nil {
			return nil, err
		}
		out[i] = recipe.ContentGroup{Title: g.Title, Items: items}
	}
	return out, nil
}
