package items

import (
	"errors"
	"fmt"

	"survivalist-gamedata/core/markup"
)

// Config holds the game_items section of the configuration.
type Config struct {
	// Disabled excludes the feature from full runs.
	Disabled bool `yaml:"disabled,omitempty"`
	// SkipFiles are item file names (e.g. "Template.xml") never loaded.
	SkipFiles []string `yaml:"skip_files"`
	// CSVFile is the CSV output path template.
	CSVFile string `yaml:"csv_file"`
	// RemoveKeys are fields left out of the CSV header.
	RemoveKeys []string `yaml:"remove_keys"`
	// SteamFile is the markup output path template.
	SteamFile string `yaml:"steam_file"`
	// SteamTables defines the markup display tables.
	SteamTables SteamTables `yaml:"steam_tables"`
}

// SteamTables lists the display tables and their fallback columns.
type SteamTables struct {
	DefaultColumns markup.Columns `yaml:"default_columns"`
	Tables         []TableConfig  `yaml:"tables"`
}

// TableConfig is one display table; rows whose Category starts with
// Category belong to it.
type TableConfig struct {
	Category string         `yaml:"Category"`
	Columns  markup.Columns `yaml:"columns,omitempty"`
}

// Validate checks the section eagerly so a bad config fails before any file
// is read.
func (c Config) Validate() error {
	if c.CSVFile == "" {
		return errors.New("game_items.csv_file is required")
	}
	if c.SteamFile == "" {
		return errors.New("game_items.steam_file is required")
	}
	for i, t := range c.SteamTables.Tables {
		if t.Category == "" {
			return fmt.Errorf("game_items.steam_tables.tables[%d]: Category is required", i)
		}
		if len(t.Columns) == 0 && len(c.SteamTables.DefaultColumns) == 0 {
			return fmt.Errorf("game_items.steam_tables.tables[%d] (%s): no columns and no default_columns", i, t.Category)
		}
	}
	return nil
}
