package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
recipes:
  - id: 6f1c2b7e-3d4a-4c5b-9e8f-0a1b2c3d4e5f
    title: Pancakes
    servings: 4
    ingredients:
      - 1 1/2 cups flour
      - 2 eggs
    steps:
      - title: Batter
        items: [Whisk, Rest]
      - title: Cook
        items: [Fry]
  - title: Toast
    servings: 1
`

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	m, err := Load(strings.NewReader(seedYAML))
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())

	all, err := m.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	pancakes := all[0]
	assert.Equal(t, uuid.MustParse("6f1c2b7e-3d4a-4c5b-9e8f-0a1b2c3d4e5f"), pancakes.ID)
	assert.Equal(t, "Pancakes", pancakes.Title)
	assert.Equal(t, 4, pancakes.Servings)
	assert.Equal(t, recipe.KindFlat, pancakes.Ingredients.Kind())
	assert.Equal(t, []string{"1 1/2 cups flour", "2 eggs"}, pancakes.Ingredients.Lines())
	assert.Equal(t, recipe.KindGrouped, pancakes.Steps.Kind())
	assert.Len(t, pancakes.Steps.Groups(), 2)

	toast := all[1]
	assert.NotEqual(t, uuid.Nil, toast.ID)
	assert.Equal(t, []recipe.ContentGroup{{Items: []string{}}}, recipe.NormalizeGroups(toast.Ingredients))
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	doc := `{"recipes":[{"title":"Soup","servings":2,"ingredients":[{"title":"Base","items":["1 onion",2]}]}]}`
	m, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	all, err := m.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []recipe.ContentGroup{{Title: "Base", Items: []string{"1 onion", "2"}}}, all[0].Ingredients.Groups())
}

func TestLoad_InvalidID(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("recipes:\n  - id: not-a-uuid\n    title: Bad\n"))
	assert.ErrorContains(t, err, "invalid id")
}

func TestLoad_NegativeServings(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("recipes:\n  - title: Bad\n    servings: -3\n"))
	assert.ErrorIs(t, err, ErrInvalidServings)
	assert.ErrorContains(t, err, `"Bad"`)
}

func TestLoad_ZeroServingsAllowed(t *testing.T) {
	t.Parallel()

	m, err := Load(strings.NewReader("recipes:\n  - title: Mystery Stew\n    servings: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
}

func TestLoad_EmptyDocument(t *testing.T) {
	t.Parallel()

	m, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMemory_GetRecipe(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()
	r := m.Put(recipe.Recipe{Title: "Salad"})

	got, err := m.GetRecipe(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salad", got.Title)

	_, err = m.GetRecipe(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_PutReplacesKeepingOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := recipe.Recipe{ID: uuid.New(), Title: "A"}
	b := recipe.Recipe{ID: uuid.New(), Title: "B"}
	m := NewMemory(a, b)

	a.Title = "A2"
	m.Put(a)

	all, err := m.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A2", all[0].Title)
	assert.Equal(t, "B", all[1].Title)
}

func TestMemory_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemory(recipe.Recipe{Title: "Stew"})
	_, err := m.ListRecipes(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
