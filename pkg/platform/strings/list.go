// Package strings provides small list-of-strings helpers shared across
// config parsing and request normalization.
package strings

import "strings"

// SplitClean splits a comma-separated value into trimmed, non-empty,
// de-duplicated elements. Order of first appearance is preserved. An empty
// input yields nil.
func SplitClean(value string) []string {
	if value == "" {
		return nil
	}
	return Clean(strings.Split(value, ","))
}

// Clean trims every element and drops empties and duplicates, preserving
// the order of first appearance.
func Clean(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
