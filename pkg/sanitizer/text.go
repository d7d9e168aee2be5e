package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeWhitespace collapses runs of whitespace, newlines included, into
// single spaces and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters except newline and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// MaxLength cuts s to at most maxLen runes. Non-positive maxLen returns "".
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// Truncate returns a transform that applies MaxLength with n.
func Truncate(n int) func(string) string {
	return func(s string) string {
		return MaxLength(s, n)
	}
}

// SingleLine joins the lines of s with spaces.
func SingleLine(s string) string {
	return NormalizeWhitespace(strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " "))
}
