// Package strings provides string list helpers used when parsing license
// short-name lists from flags and config.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice, trimming
// whitespace from each element. Order is preserved and comparison is
// case-sensitive, matching how license short names are keyed.
//
//	DedupeAndTrim([]string{" MIT ", "GPL-2.0", "MIT", ""})
//	// []string{"MIT", "GPL-2.0"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// SplitList splits s on sep and applies DedupeAndTrim. An empty or
// whitespace-only input yields nil.
//
//	SplitList("MIT, GPL-2.0,,MIT", ",")
//	// []string{"MIT", "GPL-2.0"}
func SplitList(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return DedupeAndTrim(strings.Split(s, sep))
}
