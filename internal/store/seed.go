package store

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk layout of a recipe seed document. JSON documents
// decode as well since JSON is valid YAML.
type seedFile struct {
	Recipes []seedRecipe `yaml:"recipes"`
}

type seedRecipe struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Servings    int            `yaml:"servings"`
	Ingredients recipe.Content `yaml:"ingredients"`
	Steps       recipe.Content `yaml:"steps"`
}

// LoadFile reads a seed document from path into a new Memory store.
func LoadFile(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a seed document into a new Memory store.
func Load(r io.Reader) (*Memory, error) {
	var doc seedFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	m := NewMemory()
	for i, sr := range doc.Recipes {
		id := uuid.Nil
		if sr.ID != "" {
			parsed, err := uuid.Parse(sr.ID)
			if err != nil {
				return nil, fmt.Errorf("recipe %d (%q): invalid id: %w", i, sr.Title, err)
			}
			id = parsed
		}
		if sr.Servings < 0 {
			return nil, fmt.Errorf("recipe %d (%q): servings %d: %w", i, sr.Title, sr.Servings, ErrInvalidServings)
		}
		m.Put(recipe.Recipe{
			ID:          id,
			Title:       sr.Title,
			Servings:    sr.Servings,
			Ingredients: sr.Ingredients,
			Steps:       sr.Steps,
		})
	}
	return m, nil
}
