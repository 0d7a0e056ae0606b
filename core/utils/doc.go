// Package utils provides common helpers shared by the extraction pipelines:
// number parsing and formatting for game data values and small string
// helpers that don't fit into a domain-specific package.
package utils
