// File: cleanup.go
// Title: Cleanup Operations
// Description: Diacritic removal, space and substring removal, trailing
//              substring removal and collapsing of repeated characters.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation
// - 2026-10-11 v0.2.0: Run collapsing rewritten as a single scan that copies
//                       input bytes, so invalid UTF-8 passes through intact

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveDiacritics decomposes source (NFD), drops combining non-spacing
// marks and then drops everything outside ASCII. Accented Latin letters
// reduce to their base letter; other scripts disappear. The result is pure
// ASCII, which makes the function idempotent.
//
// Example: "Crème Brûlée" -> "Creme Brulee"
func RemoveDiacritics(source string) string {
	if IsEmpty(source) {
		return source
	}

	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(isNonASCII)),
	)

	result, _, err := transform.String(t, source)
	if err != nil {
		return strings.Map(func(r rune) rune {
			if isNonASCII(r) {
				return -1
			}
			return r
		}, norm.NFD.String(source))
	}

	return result
}

func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}

// RemoveInstancesOfString removes every occurrence of each value, one value
// after another in slice order; each removal sees the result of the
// previous one. Empty values are ignored.
func RemoveInstancesOfString(source string, values []string) string {
	if IsEmpty(source) {
		return source
	}

	for _, value := range values {
		if value == "" {
			continue
		}
		source = strings.ReplaceAll(source, value, "")
	}

	return source
}

// RemoveSpaces removes every U+0020 space. Other whitespace is kept.
func RemoveSpaces(source string) string {
	if IsEmpty(source) {
		return source
	}

	return strings.ReplaceAll(source, " ", "")
}

// RemoveTrailingInstanceOfString cuts source at the last occurrence of
// toRemove, provided source (ignoring trailing whitespace) ends with
// toRemove. Otherwise source is returned unchanged, as it is when either
// argument is empty.
//
// Example: ("report_final_final", "_final") -> "report_final"
func RemoveTrailingInstanceOfString(source, toRemove string) string {
	if IsEmpty(source) || IsEmpty(toRemove) {
		return source
	}

	if !strings.HasSuffix(strings.TrimRightFunc(source, unicode.IsSpace), toRemove) {
		return source
	}

	return source[:strings.LastIndex(source, toRemove)]
}

// RemoveTrailingInstancesOfString considers every value that source ends
// with and cuts source at the smallest last-occurrence index among them.
// With no matching value, including an empty values slice, source is
// returned unchanged.
func RemoveTrailingInstancesOfString(source string, values []string) string {
	if IsEmpty(source) {
		return source
	}

	offset := -1
	for _, value := range values {
		if !strings.HasSuffix(source, value) {
			continue
		}
		if idx := strings.LastIndex(source, value); offset == -1 || idx < offset {
			offset = idx
		}
	}

	if offset == -1 {
		return source
	}

	return source[:offset]
}

// TruncateMultipleOccurancesOfChar collapses every run of two or more c
// into a single c. All other runes are copied unchanged.
//
// Example: ("a---b-c", '-') -> "a-b-c"
func TruncateMultipleOccurancesOfChar(source string, c rune) string {
	if IsEmpty(source) {
		return source
	}

	var builder strings.Builder
	builder.Grow(len(source))

	previousWasC := false
	for i := 0; i < len(source); {
		r, size := utf8.DecodeRuneInString(source[i:])
		isC := r == c && (r != utf8.RuneError || size > 1)
		if !isC || !previousWasC {
			builder.WriteString(source[i : i+size])
		}
		previousWasC = isC
		i += size
	}

	return builder.String()
}

// TruncateMultipleSpaces collapses runs of spaces into a single space.
//
// Example: "a   b  c" -> "a b c"
func TruncateMultipleSpaces(source string) string {
	return TruncateMultipleOccurancesOfChar(source, ' ')
}
