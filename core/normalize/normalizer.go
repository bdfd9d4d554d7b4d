// Package normalize implements the text transforms applied to title spans.
// Both functions are pure and total: any string, including empty or
// whitespace-only input, maps to a defined result.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToSentenceCase trims and lowercases text, then uppercases its first
// character. Non-letter first characters are left as they are.
func ToSentenceCase(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	first, size := utf8.DecodeRuneInString(lower)
	if first == utf8.RuneError {
		return lower
	}
	return string(unicode.ToUpper(first)) + lower[size:]
}

// CleanAndLower trims and lowercases text and strips a single trailing
// period. Interior periods are kept, as is any period before the last one.
func CleanAndLower(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSuffix(strings.ToLower(trimmed), ".")
}
