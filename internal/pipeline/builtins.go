// File: builtins.go
// Title: Builtin Operations
// Description: Registers every stringx function as a named operation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-05 v0.1.0: Initial operation set
// - 2026-10-16 v0.2.0: fixed-display-width, pad-right, aliases

package pipeline

import (
	"github.com/msto63/strext/utils/stringx"
)

func builtinDefinitions() []*Definition {
	widthParam := Param{Name: "width", Type: ParamInt, Description: "target length"}
	charParam := Param{Name: "char", Type: ParamRune, Description: "character to look for"}
	paddingParam := Param{Name: "padding", Type: ParamRune, Default: " ", Description: "fill character"}

	return []*Definition{
		{
			Name:        "fixed-width",
			Description: "Pad on the right with spaces to width characters",
			Params:      []Param{widthParam},
			Example:     []string{"12"},
			Func: func(s string, a Args) string {
				return stringx.FixedWidth(s, a.Int("width"))
			},
		},
		{
			Name:        "fixed-display-width",
			Description: "Pad on the right with spaces to width terminal cells",
			Params:      []Param{widthParam},
			Example:     []string{"12"},
			Func: func(s string, a Args) string {
				return stringx.FixedDisplayWidth(s, a.Int("width"))
			},
		},
		{
			Name:        "pad-right",
			Description: "Pad on the right with a fill character to width characters",
			Params:      []Param{widthParam, paddingParam},
			Example:     []string{"12", "."},
			Func: func(s string, a Args) string {
				return stringx.PadRight(s, a.Int("width"), a.Rune("padding"))
			},
		},
		{
			Name:        "take-first-characters",
			Description: "Keep the first count characters, padding short input",
			Params: []Param{
				{Name: "count", Type: ParamInt, Description: "number of characters, not negative"},
				paddingParam,
			},
			Example: []string{"5", "*"},
			Func: func(s string, a Args) string {
				return stringx.TakeFirstCharacters(s, a.Int("count"), a.Rune("padding"))
			},
		},
		{
			Name:        "get-initials",
			Description: "First letter of each space separated word, uppercased",
			Func: func(s string, _ Args) string {
				return stringx.GetInitials(s)
			},
		},
		{
			Name:        "to-title-case",
			Description: "Uppercase the first letter and lowercase the rest of each word",
			Func: func(s string, _ Args) string {
				return stringx.ToTitleCase(s)
			},
		},
		{
			Name:        "remove-diacritics",
			Description: "Strip accents and drop remaining non-ASCII characters",
			Func: func(s string, _ Args) string {
				return stringx.RemoveDiacritics(s)
			},
		},
		{
			Name:        "remove-instances-of-string",
			Description: "Remove every occurrence of each value, in order",
			Params:      []Param{{Name: "values", Type: ParamStrings, Description: "strings to remove"}},
			Example:     []string{"a", "e"},
			Func: func(s string, a Args) string {
				return stringx.RemoveInstancesOfString(s, a.Strings("values"))
			},
		},
		{
			Name:        "remove-spaces",
			Description: "Remove every space character",
			Func: func(s string, _ Args) string {
				return stringx.RemoveSpaces(s)
			},
		},
		{
			Name:        "remove-trailing-instance-of-string",
			Description: "Cut a trailing value, ignoring trailing whitespace",
			Params:      []Param{{Name: "value", Type: ParamString, Description: "suffix to cut"}},
			Example:     []string{"s"},
			Func: func(s string, a Args) string {
				return stringx.RemoveTrailingInstanceOfString(s, a.String("value"))
			},
		},
		{
			Name:        "remove-trailing-instances-of-string",
			Description: "Cut the trailing value that starts earliest",
			Params:      []Param{{Name: "values", Type: ParamStrings, Description: "candidate suffixes"}},
			Example:     []string{"s", "es"},
			Func: func(s string, a Args) string {
				return stringx.RemoveTrailingInstancesOfString(s, a.Strings("values"))
			},
		},
		{
			Name:        "truncate-multiple-occurances-of-char",
			Description: "Collapse runs of a character to a single one",
			Params:      []Param{charParam},
			Example:     []string{"-"},
			Func: func(s string, a Args) string {
				return stringx.TruncateMultipleOccurancesOfChar(s, a.Rune("char"))
			},
		},
		{
			Name:        "truncate-multiple-spaces",
			Description: "Collapse runs of spaces to a single space",
			Func: func(s string, _ Args) string {
				return stringx.TruncateMultipleSpaces(s)
			},
		},
		{
			Name:        "trim-whitespace-and-punctuation",
			Description: "Trim trailing whitespace and punctuation except the allowed characters",
			Params:      []Param{{Name: "allowed", Type: ParamRunes, Description: "punctuation to keep"}},
			Example:     []string{"?"},
			Func: func(s string, a Args) string {
				return stringx.TrimWhitespaceAndPunctuation(s, a.Runes("allowed")...)
			},
		},
		{
			Name:        "substring-from-last-index-of",
			Description: "Text after the last occurrence of a character",
			Params:      []Param{charParam},
			Example:     []string{" "},
			Func: func(s string, a Args) string {
				return stringx.SubstringFromLastIndexOf(s, a.Rune("char"))
			},
		},
		{
			Name:        "substring-to-last-index-of",
			Description: "Text before the last occurrence of a character",
			Params:      []Param{charParam},
			Example:     []string{" "},
			Func: func(s string, a Args) string {
				return stringx.SubstringToLastIndexOf(s, a.Rune("char"))
			},
		},
	}
}

var builtinAliases = map[string]string{
	"title":                                 "to-title-case",
	"initials":                              "get-initials",
	"ascii":                                 "remove-diacritics",
	"squeeze":                               "truncate-multiple-spaces",
	"truncate-multiple-occurrences-of-char": "truncate-multiple-occurances-of-char",
	"take":                                  "take-first-characters",
}

func (r *Registry) registerBuiltins() {
	for _, def := range builtinDefinitions() {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	for alias, name := range builtinAliases {
		if err := r.RegisterAlias(alias, name); err != nil {
			panic(err)
		}
	}
}
