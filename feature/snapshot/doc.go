// Package snapshot stores the canonical rows of each run in a SQL
// database (MySQL or SQLite), one table row per extracted record.
//
// A run replaces whatever was stored before for the same game version and
// pipeline, so the table always holds the latest extract of every version.
// Each row keeps the run ID it was written by, its display name and group
// (Category for items, SkillType for recipes) and the full row as JSON.
package snapshot
