package recipes

import "errors"

var (
	// ErrUnknownIngredient is returned for an ingredient that names neither
	// prototypes nor liquids.
	ErrUnknownIngredient = errors.New("unrecognized ingredient")
	// ErrNotRecipeList is returned when a recipes file has another root.
	ErrNotRecipeList = errors.New("not a recipe list")
)
