package items

import (
	"cmp"
	"slices"
	"strings"

	"survivalist-gamedata/core/tabular"
	"survivalist-gamedata/core/utils"
)

// meleePrefix marks categories ordered by damage instead of price.
const meleePrefix = "2:Weapons/Melee"

// Sort orders rows by category, then damage (melee weapons) or base
// price (everything else), then name. Ties keep their load order.
func Sort(rows []tabular.Row) {
	slices.SortStableFunc(rows, compareItems)
}

func compareItems(a, b tabular.Row) int {
	if c := cmp.Compare(a["Category"], b["Category"]); c != 0 {
		return c
	}

	if strings.HasPrefix(a["Category"], meleePrefix) {
		if c := cmp.Compare(a["Damage"], b["Damage"]); c != 0 {
			return c
		}
	} else if c := cmp.Compare(price(a), price(b)); c != 0 {
		return c
	}

	return cmp.Compare(a["NativeName"], b["NativeName"])
}

func price(row tabular.Row) float64 {
	v, ok := row.Lookup("BasePrice")
	return utils.LeadingFloat(v, ok, -1)
}
