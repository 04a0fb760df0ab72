package recipe

import "github.com/google/uuid"

// Recipe is the slice of a stored recipe this service works with.
type Recipe struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Servings    int       `json:"servings"`
	Ingredients Content   `json:"ingredients"`
	Steps       Content   `json:"steps"`
}

// Summary is the list representation of a recipe.
type Summary struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Servings int       `json:"servings"`
}

func (r Recipe) Summary() Summary {
	return Summary{ID: r.ID, Title: r.Title, Servings: r.Servings}
}
