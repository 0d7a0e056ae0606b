// Package recipes extracts crafting recipes from the Recipes.xml file of
// each gamedata directory.
//
// Recipes are flattened to rows with a rendered product ("Bread (2)") and
// ingredient list ("Wood (3)" per line), sorted by the configured fields
// and written as CSV and as SteamML tables keyed by SkillType and
// RecipeType. Deprecated recipes can be left out of the markup; they are
// still counted so the totals reconcile with the number loaded.
package recipes
