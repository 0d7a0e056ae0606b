package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToFloat parses a game data number. Surrounding whitespace is ignored.
func ToFloat(val string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", val)
	}
	return f, nil
}

// LeadingFloat parses the part of val before the first "/", so "12 / FlOz"
// yields 12. Missing or unparsable values yield def.
func LeadingFloat(val string, ok bool, def float64) float64 {
	if !ok {
		return def
	}
	head, _, _ := strings.Cut(val, "/")
	f, err := ToFloat(head)
	if err != nil {
		return def
	}
	return f
}

// FormatFixed renders f with prec decimals.
func FormatFixed(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}

// ToBool converts a game data flag. Only "true" and "1" are true.
func ToBool(val string) bool {
	v := strings.TrimSpace(val)
	return v == "1" || strings.EqualFold(v, "true")
}

// JoinNonEmpty joins the non-empty parts with sep.
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
