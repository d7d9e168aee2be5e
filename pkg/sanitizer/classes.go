package sanitizer

import (
	"slices"
	"strings"
)

// ClassName keeps only letters, digits, hyphens and underscores, so the
// result is safe inside a class attribute.
func ClassName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return -1
	}, s)
}

// CleanStringSlice trims every item, drops empty ones and removes duplicates,
// keeping the first occurrence.
func CleanStringSlice(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" && !slices.Contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}

// ClassList cleans each class name and then the list itself.
func ClassList(classes []string) []string {
	cleaned := make([]string, len(classes))
	for i, c := range classes {
		cleaned[i] = ClassName(c)
	}
	return CleanStringSlice(cleaned)
}
