// File: case.go
// Title: Case Transforms
// Description: Title casing and initials extraction over space-separated
//              words. The leading rune of a word uses the simple one-to-one
//              upper-case mapping; the rest of the word is lower-cased with
//              golang.org/x/text/cases and the root locale.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-27
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-27 v0.1.0: Initial implementation
// - 2026-10-09 v0.2.0: Switched from unicode.ToUpper to x/text casers
// - 2026-10-19 v0.3.0: Leading rune maps to exactly one rune again

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase upper-cases the first rune of every space-separated word and
// lower-cases the rest of it. The first rune is never expanded, so "ß"
// stays "ß". Words are split on single spaces, so runs of
// spaces survive unchanged. An empty source is returned unchanged.
//
// Example: "jOHN sMITH" -> "John Smith"
func ToTitleCase(source string) string {
	if IsEmpty(source) {
		return source
	}

	lower := cases.Lower(language.Und)

	parts := strings.Split(source, " ")
	for i, part := range parts {
		if part == "" {
			continue
		}
		head, size := upperFirst(part)
		parts[i] = head + lower.String(part[size:])
	}

	return strings.Join(parts, " ")
}

// GetInitials concatenates the upper-cased first rune of every
// space-separated word, one rune per word. Empty words contribute nothing,
// so an empty source yields "".
//
// Example: "John Smith" -> "JS"
func GetInitials(source string) string {
	var builder strings.Builder
	for _, part := range strings.Split(source, " ") {
		if part == "" {
			continue
		}
		head, _ := upperFirst(part)
		builder.WriteString(head)
	}

	return builder.String()
}

// upperFirst returns the upper-cased first rune of a non-empty word and its
// byte length. An invalid leading byte is returned as is.
func upperFirst(word string) (string, int) {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return word[:size], size
	}
	return string(unicode.ToUpper(r)), size
}
