package utils

import "strings"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// SplitList splits a separated setting such as "a, b,,c" into its trimmed,
// non-empty items.
func SplitList(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return RemoveEmptyStrings(parts)
}
