// Package items extracts equipment and liquid prototypes.
//
// The pipeline reads every file below Equipment/ and then Liquid/ of each
// gamedata directory, decodes each prototype into a flat row, applies the
// display rules (category remaps, loot locations, skill progressions at
// level 5, per-FlOz values), sorts the rows and writes them as CSV and as
// SteamML tables grouped by category prefix.
//
// Rows are matched against every configured table independently, so an
// item whose category starts with several configured prefixes is listed
// in each of those tables and counted once per table.
package items
