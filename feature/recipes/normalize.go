package recipes

import (
	"fmt"
	"strings"

	"survivalist-gamedata/core/tabular"
	"survivalist-gamedata/core/xmltree"

	"go.uber.org/zap"
)

const (
	defaultRecipeType = "Inventory"
	defaultSkillLevel = "0"
	unknownProduct    = "Product?"
	spitRoastPrefix   = "Campfire_SpitRoast"
	campfire          = "Campfire"
)

// productNameFields are tried in order for the product name.
var productNameFields = []string{"ProductPrototypeName", "ProductType", "ProductLiquidPrototypeName"}

// Process decodes and normalizes every record, preserving load order.
func Process(records []Record, logger *zap.Logger) ([]tabular.Row, error) {
	rows := make([]tabular.Row, 0, len(records))
	for _, rec := range records {
		row, err := Decode(rec)
		if err != nil {
			return nil, err
		}
		Normalize(row, logger)
		rows = append(rows, row)
	}
	return rows, nil
}

// Decode flattens a recipe element and renders its ingredient list.
func Decode(rec Record) (tabular.Row, error) {
	row := tabular.Row(rec.Node.Fields())

	ingredients, err := stringifyIngredients(rec.Node.Child("Ingredients"))
	if err != nil {
		id, _ := rec.Node.Field("UniqueID")
		return nil, fmt.Errorf("%s: recipe %q: %w", rec.File, id, err)
	}
	row["Ingredients"] = ingredients
	return row, nil
}

// stringifyIngredients renders one line per ingredient, e.g. "Wood (3)"
// or "Water (8 FlOz)".
func stringifyIngredients(node *xmltree.Node) (string, error) {
	list := node.List("Ingredient")
	lines := make([]string, 0, len(list))

	for _, ingr := range list {
		switch {
		case ingr.Has("PrototypeNames"):
			amount, _ := ingr.Field("Amount")
			lines = append(lines, fmt.Sprintf("%s (%s)", names(ingr.Child("PrototypeNames")), amount))
		case ingr.Has("LiquidTypeNames"):
			amount, _ := ingr.Field("LiquidAmount")
			lines = append(lines, fmt.Sprintf("%s (%s FlOz)", names(ingr.Child("LiquidTypeNames")), amount))
		default:
			return "", fmt.Errorf("%w: %s", ErrUnknownIngredient, strings.Join(ingr.Keys(), ", "))
		}
	}

	return strings.ReplaceAll(strings.Join(lines, "\n"), "'", ""), nil
}

// names renders a single name bare and several as "[A, B]".
func names(node *xmltree.Node) string {
	list := node.Strings("string")
	if len(list) == 1 {
		return list[0]
	}
	return "[" + strings.Join(list, ", ") + "]"
}

// Normalize applies the field-level rules to a decoded row in place.
func Normalize(row tabular.Row, logger *zap.Logger) {
	name, ok := productName(row)
	if !ok {
		logger.Warn("Recipe has no product name", zap.String("recipe", row["UniqueID"]))
		name = unknownProduct
	}
	row["ProductPrototypeName"] = name

	if _, ok := row.Lookup("ProductAmount"); !ok {
		if v, ok := row.Lookup("ProductLiquidAmount"); ok {
			row["ProductAmount"] = v + " FlOz"
		}
	}

	row["Product"] = name
	if amount := row["ProductAmount"]; amount != "" {
		row["Product"] = fmt.Sprintf("%s (%s)", name, amount)
	}

	if !row.Has("RecipeType") {
		row["RecipeType"] = defaultRecipeType
	}
	if !row.Has("SkillLevel") {
		row["SkillLevel"] = defaultSkillLevel
	}
	if strings.HasPrefix(row["RecipeType"], spitRoastPrefix) {
		row["RecipeType"] = campfire
	}
}

func productName(row tabular.Row) (string, bool) {
	for _, field := range productNameFields {
		if v, ok := row.Lookup(field); ok {
			return v, true
		}
	}
	return "", false
}
