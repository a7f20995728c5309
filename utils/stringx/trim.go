// File: trim.go
// Title: Punctuation-Aware Trimming
// Description: Removes trailing whitespace and punctuation, optionally
//              keeping an allow-list of punctuation runes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-03

package stringx

import (
	"slices"
	"unicode"
	"unicode/utf8"
)

// TrimWhitespaceAndPunctuation removes trailing runes that are whitespace or
// punctuation (Unicode category P) not listed in allowedPunctuation. Leading
// content is never touched. Blank input yields "", and so does input made
// only of removable runes.
//
// Example: "Hello, world!  " -> "Hello, world"
// Example: ("Really?!", '?') -> "Really?"
func TrimWhitespaceAndPunctuation(source string, allowedPunctuation ...rune) string {
	if IsBlank(source) {
		return ""
	}

	end := len(source)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(source[:end])
		removable := unicode.IsSpace(r) ||
			(unicode.IsPunct(r) && !slices.Contains(allowedPunctuation, r))
		if !removable {
			break
		}
		end -= size
	}

	return source[:end]
}
