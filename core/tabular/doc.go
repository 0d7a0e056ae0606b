// Package tabular holds the canonical row shape shared by both pipelines and
// the flat CSV serialization of a row sequence.
package tabular
