// Package publish uploads the files written by a run to object storage,
// keyed by game version, so earlier extracts stay available next to the
// current ones.
package publish
