package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-recipes/internal/mocks"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
	"github.com/mwhite7112/woodpantry-recipes/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// similarity() unit tests
// ---------------------------------------------------------------------------

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    string
		wantMin float64
		wantMax float64
	}{
		{
			name:    "exact match returns 1.0",
			a:       "lasagna",
			b:       "lasagna",
			wantMin: 1.0,
			wantMax: 1.0,
		},
		{
			name:    "close match lasagna/lasagne",
			a:       "lasagna",
			b:       "lasagne",
			wantMin: 0.8,
			wantMax: 1.0,
		},
		{
			name:    "distant match lasagna/brownies",
			a:       "lasagna",
			b:       "brownies",
			wantMin: 0.0,
			wantMax: 0.4,
		},
		{
			name:    "both empty strings returns 1.0",
			a:       "",
			b:       "",
			wantMin: 1.0,
			wantMax: 1.0,
		},
		{
			name:    "one empty string returns 0.0",
			a:       "lasagna",
			b:       "",
			wantMin: 0.0,
			wantMax: 0.01,
		},
		{
			name:    "unicode strings",
			a:       "creme brulee",
			b:       "crème brûlée",
			wantMin: 0.7,
			wantMax: 1.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			score := similarity(tc.a, tc.b)
			assert.GreaterOrEqual(t, score, tc.wantMin, "score %f below expected min %f", score, tc.wantMin)
			assert.LessOrEqual(t, score, tc.wantMax, "score %f above expected max %f", score, tc.wantMax)
		})
	}
}

// ---------------------------------------------------------------------------
// Find() unit tests
// ---------------------------------------------------------------------------

func newRecipe(title string, servings int) recipe.Recipe {
	return recipe.Recipe{
		ID:       uuid.New(),
		Title:    title,
		Servings: servings,
	}
}

func TestFind_ExactTitleMatch(t *testing.T) {
	t.Parallel()

	mockS := mocks.NewMockStore(t)
	svc := New(mockS, 0.8)

	lasagna := newRecipe("Lasagna", 6)
	mockS.EXPECT().ListRecipes(mock.Anything).Return([]recipe.Recipe{newRecipe("Lasagne Verde", 4), lasagna}, nil)

	result, err := svc.Find(context.Background(), "  LASAGNA ")
	require.NoError(t, err)
	assert.Equal(t, lasagna.ID, result.Recipe.ID)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestFind_FuzzyAboveThreshold(t *testing.T) {
	t.Parallel()

	mockS := mocks.NewMockStore(t)
	svc := New(mockS, 0.8)

	brownies := newRecipe("Brownies", 12)
	mockS.EXPECT().ListRecipes(mock.Anything).Return([]recipe.Recipe{newRecipe("Pancakes", 4), brownies}, nil)

	// "brownie" is 1 edit away from "brownies" (8 chars) => similarity 0.875
	result, err := svc.Find(context.Background(), "brownie")
	require.NoError(t, err)
	assert.Equal(t, brownies.ID, result.Recipe.ID)
	assert.GreaterOrEqual(t, result.Confidence, 0.8)
	assert.Less(t, result.Confidence, 1.0)
}

func TestFind_BelowThreshold(t *testing.T) {
	t.Parallel()

	mockS := mocks.NewMockStore(t)
	svc := New(mockS, 0.8)

	mockS.EXPECT().ListRecipes(mock.Anything).Return([]recipe.Recipe{newRecipe("Pancakes", 4)}, nil)

	_, err := svc.Find(context.Background(), "goulash")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFind_EmptyStore(t *testing.T) {
	t.Parallel()

	mockS := mocks.NewMockStore(t)
	svc := New(mockS, 0.0)

	mockS.EXPECT().ListRecipes(mock.Anything).Return(nil, nil)

	_, err := svc.Find(context.Background(), "anything")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFind_StoreError(t *testing.T) {
	t.Parallel()

	mockS := mocks.NewMockStore(t)
	svc := New(mockS, 0.8)

	boom := errors.New("boom")
	mockS.EXPECT().ListRecipes(mock.Anything).Return(nil, boom)

	_, err := svc.Find(context.Background(), "pancakes")
	assert.ErrorIs(t, err, boom)
}
