// File: substring.go
// Title: Substring Extraction
// Description: Extraction around the last occurrence of a rune.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-03
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Invalid runes never match

package stringx

import (
	"strings"
	"unicode/utf8"
)

// SubstringFromLastIndexOf returns the text after the last value in source,
// or "" when value does not occur. An empty source is returned unchanged.
//
// Example: ("path/to/file.txt", '/') -> "file.txt"
func SubstringFromLastIndexOf(source string, value rune) string {
	if IsEmpty(source) {
		return source
	}

	idx := lastIndexOfRune(source, value)
	if idx < 0 {
		return ""
	}

	return source[idx+utf8.RuneLen(value):]
}

// SubstringToLastIndexOf returns the text before the last value in source,
// or source itself when value does not occur.
//
// Example: ("path/to/file.txt", '/') -> "path/to"
func SubstringToLastIndexOf(source string, value rune) string {
	if IsEmpty(source) {
		return source
	}

	idx := lastIndexOfRune(source, value)
	if idx < 0 {
		return source
	}

	return source[:idx]
}

// lastIndexOfRune is strings.LastIndex for a rune. A value that is not a
// valid rune (a surrogate half or beyond U+10FFFF) is never found.
func lastIndexOfRune(source string, value rune) int {
	if !utf8.ValidRune(value) {
		return -1
	}
	return strings.LastIndex(source, string(value))
}
