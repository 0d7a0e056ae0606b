package items

import (
	"strings"

	"survivalist-gamedata/core/markup"
	"survivalist-gamedata/core/tabular"
)

// Build returns the markup tables. A table without its own columns uses
// the default columns.
func (c SteamTables) Build() []markup.Table {
	tables := make([]markup.Table, 0, len(c.Tables))
	for _, tc := range c.Tables {
		columns := tc.Columns
		if len(columns) == 0 {
			columns = c.DefaultColumns
		}
		prefix := tc.Category
		tables = append(tables, markup.Table{
			Name:    prefix,
			Columns: columns,
			Match: func(row tabular.Row) bool {
				return strings.HasPrefix(row["Category"], prefix)
			},
		})
	}
	return tables
}
