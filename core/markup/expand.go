package markup

import (
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`[a-z][A-Z]`)
	underscoreTag = regexp.MustCompile(`_([a-zA-Z0-9 ]+)`)
)

// Expander turns game identifiers into readable table text.
type Expander struct {
	replacements Replacements
}

// NewExpander creates an expander applying the given replacements last.
func NewExpander(replacements Replacements) *Expander {
	return &Expander{replacements: replacements}
}

// Expand splits camel-case joins ("AmmoTypes" → "Ammo Types"), turns a
// "_Suffix" into " (Suffix)" and then applies the literal replacements.
func (e *Expander) Expand(text string) string {
	text = camelBoundary.ReplaceAllStringFunc(text, func(m string) string {
		return m[:1] + " " + m[1:]
	})
	text = underscoreTag.ReplaceAllString(text, " ($1)")
	if e == nil {
		return text
	}
	for _, r := range e.replacements {
		text = strings.ReplaceAll(text, r.Old, r.New)
	}
	return text
}
