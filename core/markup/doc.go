// Package markup writes canonical rows as SteamML, the bracket-tag table
// dialect accepted by Steam guides and forums.
//
// # Output
//
// Each display table is rendered as
//
//	[table]
//	 [tr]
//	  [th]Name[/th]
//	 [/tr]
//	 [tr]
//	  [td]Axe[/td]
//	 [/tr]
//	[/table]
//
// followed by a blank line. Header labels are written as configured; cell
// values go through the Expander first.
//
// # Table membership
//
// Tables are tried one by one against every row. There is no first-match
// rule: overlapping table definitions put the same row in more than one
// table, and every placement is counted. Callers compare the counts with
// the number of loaded records to spot rows no table accepted.
//
// # Configuration types
//
// Columns and Replacements decode from YAML mappings and keep the mapping
// order, which is the order used for output.
package markup
