// Package strings provides helpers for normalizing request input.
package strings

import (
	"strings"
)

// Dedupe removes repeated values, keeping the first occurrence of each.
// Order is preserved and a nil slice stays nil.
//
// Example:
//
//	Dedupe([]models.Region{"SEOUL", "BUSAN", "SEOUL"})
//	// Returns: []models.Region{"SEOUL", "BUSAN"}
func Dedupe[T ~string](values []T) []T {
	if len(values) == 0 {
		return values
	}

	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// TrimAll trims surrounding whitespace from every pointed-to string in place.
func TrimAll(values ...*string) {
	for _, v := range values {
		if v != nil {
			*v = strings.TrimSpace(*v)
		}
	}
}
