package service

import (
	"context"
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
	"github.com/mwhite7112/woodpantry-recipes/internal/store"
)

// FindResult is returned by Find.
type FindResult struct {
	Recipe     recipe.Recipe
	Confidence float64
}

// similarity returns a 0.0–1.0 confidence score between two strings using
// Levenshtein distance: 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// Find returns the recipe whose title best matches name. An exact title
// match wins immediately; otherwise the best fuzzy match is returned if it
// reaches the configured threshold, else store.ErrNotFound.
func (s *Service) Find(ctx context.Context, name string) (FindResult, error) {
	normalized := Normalize(name)

	all, err := s.store.ListRecipes(ctx)
	if err != nil {
		return FindResult{}, err
	}

	var best recipe.Recipe
	bestScore := -1.0

	for _, r := range all {
		title := Normalize(r.Title)
		if title == normalized {
			return FindResult{Recipe: r, Confidence: 1.0}, nil
		}
		if score := similarity(normalized, title); score > bestScore {
			bestScore = score
			best = r
		}
	}

	if bestScore < s.threshold {
		return FindResult{}, fmt.Errorf("recipe %q: %w", normalized, store.ErrNotFound)
	}
	return FindResult{Recipe: best, Confidence: bestScore}, nil
}
