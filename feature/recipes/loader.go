package recipes

import (
	"fmt"

	"survivalist-gamedata/core/gamedata"
	"survivalist-gamedata/core/xmltree"

	"go.uber.org/zap"
)

// RecipesFile is the recipe list file name inside a gamedata directory.
const RecipesFile = "Recipes.xml"

// Record is one raw recipe element.
type Record struct {
	File string
	Node *xmltree.Node
}

// Load reads the recipe list of every gamedata directory that has one.
func Load(src *gamedata.Source, logger *zap.Logger) ([]Record, error) {
	files, err := src.Existing(RecipesFile)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, path := range files {
		logger.Debug("Loading recipes", zap.String("path", path))
		root, err := xmltree.ParseFile(path)
		if err != nil {
			return nil, err
		}
		if root.Name != "RecipeList" {
			return nil, fmt.Errorf("%s: %w: root is %q", path, ErrNotRecipeList, root.Name)
		}
		for _, node := range root.Path("Recipes").List("Recipe") {
			records = append(records, Record{File: path, Node: node})
		}
	}

	logger.Info("Found recipes", zap.Int("count", len(records)))
	return records, nil
}
