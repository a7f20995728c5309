// File: padding.go
// Title: Padding and Truncation
// Description: Fixed-width padding and fixed-length truncation with padding.
//              Widths are counted in runes except for FixedDisplayWidth,
//              which counts terminal cells.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-27
// Modified: 2026-10-16
//
// Change History:
// - 2026-09-27 v0.1.0: FixedWidth, TakeFirstCharacters, PadRight
// - 2026-10-16 v0.2.0: FixedDisplayWidth, TakeFirstCharactersWithValidation

package stringx

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/msto63/strext/core/errors"
)

// DefaultPadding is the padding rune used when callers have no preference.
const DefaultPadding = ' '

// PadRight pads s on the right with pad until it is width runes long.
// If s already has width or more runes it is returned unchanged.
func PadRight(s string, width int, pad rune) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(len(s) + padCount*len(string(pad)))

	builder.WriteString(s)
	for i := 0; i < padCount; i++ {
		builder.WriteRune(pad)
	}

	return builder.String()
}

// FixedWidth pads source with spaces on the right until it is width runes
// long. An empty source yields width spaces. Longer sources are not
// truncated.
func FixedWidth(source string, width int) string {
	return PadRight(source, width, ' ')
}

// FixedDisplayWidth is FixedWidth measured in terminal cells.
func FixedDisplayWidth(source string, width int) string {
	return runewidth.FillRight(source, width)
}

// TakeFirstCharacters returns exactly count runes: the first count runes of
// source, or source right-padded with padding when it is shorter. An empty
// source yields count padding runes.
//
// A negative count panics with a CodeValueOutOfRange error.
func TakeFirstCharacters(source string, count int, padding rune) string {
	result, err := TakeFirstCharactersWithValidation(source, count, padding)
	if err != nil {
		panic(err)
	}
	return result
}

// TakeFirstCharactersWithValidation is TakeFirstCharacters returning the
// range violation instead of panicking.
func TakeFirstCharactersWithValidation(source string, count int, padding rune) (string, error) {
	if count < 0 {
		return "", errors.StringxOutOfRange("TakeFirstCharacters", "count", count, "count >= 0")
	}

	if IsEmpty(source) {
		return strings.Repeat(string(padding), count), nil
	}

	seen := 0
	for i := range source {
		if seen == count {
			return source[:i], nil
		}
		seen++
	}

	return PadRight(source, count, padding), nil
}
