package recipes

import (
	"survivalist-gamedata/core/markup"
	"survivalist-gamedata/core/tabular"
)

// Build returns the markup tables. A recipe belongs to a table when its
// SkillType equals the table's and the table's RecipeType is "*" or equal
// to the recipe's.
func (c SteamTables) Build() []markup.Table {
	tables := make([]markup.Table, 0, len(c.Tables))
	for _, tc := range c.Tables {
		columns := tc.Columns
		if len(columns) == 0 {
			columns = c.DefaultColumns
		}
		skill, recipeType := tc.SkillType, tc.RecipeType
		if recipeType == "" {
			recipeType = AnyRecipeType
		}
		tables = append(tables, markup.Table{
			Name:    skill + "/" + recipeType,
			Columns: columns,
			Match: func(row tabular.Row) bool {
				return row["SkillType"] == skill &&
					(recipeType == AnyRecipeType || recipeType == row["RecipeType"])
			},
		})
	}
	return tables
}

func isDeprecated(row tabular.Row) bool {
	return row["Deprecated"] == "true"
}
