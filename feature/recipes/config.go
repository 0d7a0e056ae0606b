package recipes

import (
	"errors"
	"fmt"

	"survivalist-gamedata/core/markup"
	"survivalist-gamedata/core/tabular"
)

// AnyRecipeType matches every RecipeType in a table definition.
const AnyRecipeType = "*"

// Config holds the recipes section of the configuration.
type Config struct {
	Disabled bool `yaml:"disabled,omitempty"`
	// SkipDeprecated leaves recipes flagged Deprecated out of the markup.
	SkipDeprecated bool `yaml:"skip_deprecated"`
	// OrderBy lists the sort key fields, most significant first.
	OrderBy tabular.Fields `yaml:"order_by"`
	CSVFile string         `yaml:"csv_file"`
	// CSVFields is the explicit CSV header. Empty means every field.
	CSVFields   []string    `yaml:"csv_fields"`
	SteamFile   string      `yaml:"steam_file"`
	SteamTables SteamTables `yaml:"steam_tables"`
}

// SteamTables lists the display tables and their fallback columns.
type SteamTables struct {
	DefaultColumns markup.Columns `yaml:"default_columns"`
	Tables         []TableConfig  `yaml:"tables"`
}

// TableConfig is one display table keyed by skill and recipe type.
type TableConfig struct {
	SkillType  string         `yaml:"SkillType"`
	RecipeType string         `yaml:"RecipeType,omitempty"`
	Columns    markup.Columns `yaml:"columns,omitempty"`
}

// SetDefaults fills optional table fields.
func (c *Config) SetDefaults() {
	for i := range c.SteamTables.Tables {
		if c.SteamTables.Tables[i].RecipeType == "" {
			c.SteamTables.Tables[i].RecipeType = AnyRecipeType
		}
	}
}

// Validate checks the section eagerly.
func (c Config) Validate() error {
	if c.CSVFile == "" {
		return errors.New("recipes.csv_file is required")
	}
	if c.SteamFile == "" {
		return errors.New("recipes.steam_file is required")
	}
	for i, t := range c.SteamTables.Tables {
		if t.SkillType == "" {
			return fmt.Errorf("recipes.steam_tables.tables[%d]: SkillType is required", i)
		}
		if len(t.Columns) == 0 && len(c.SteamTables.DefaultColumns) == 0 {
			return fmt.Errorf("recipes.steam_tables.tables[%d] (%s): no columns and no default_columns", i, t.SkillType)
		}
	}
	return nil
}
