// Package xmltree turns game data XML documents into an ordered element tree.
//
// The tree drops attributes and keeps element order. Accessors never guess
// about cardinality: Child returns the first match, List always returns a
// slice, so a field written once in one file and many times in another is
// read the same way.
package xmltree
