package recipes

import (
	"slices"
	"strings"

	"survivalist-gamedata/core/tabular"
)

// Sort orders rows lexicographically by the given fields. Missing fields
// sort as empty strings and ties keep their load order.
func Sort(rows []tabular.Row, orderBy []string) {
	slices.SortStableFunc(rows, func(a, b tabular.Row) int {
		for _, field := range orderBy {
			if c := strings.Compare(a[field], b[field]); c != 0 {
				return c
			}
		}
		return 0
	})
}
