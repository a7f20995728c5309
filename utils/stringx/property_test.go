// File: property_test.go
// Title: Property Tests
// Description: Checks invariants that hold for every input over a fixed
//              corpus of ASCII, accented, CJK and malformed strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package stringx

import (
	"strings"
	"testing"
	"unicode/utf8"
)

var propertyCorpus = []string{
	"",
	" ",
	"a",
	"hello world",
	"  spaced   out  ",
	"a---b--c-",
	"path/to/file.txt",
	"Crème Brûlée à la carte",
	"Ærøskøbing Łódź",
	"日本語 テキスト",
	"mixed 日本 and ascii",
	"trailing punctuation?!.",
	"tab\tand\nnewline",
	"\a bell \a\a",
	"\xff invalid \xfe",
}

func TestFixedWidthProperty(t *testing.T) {
	for _, s := range propertyCorpus {
		n := utf8.RuneCountInString(s)
		for _, w := range []int{0, 1, 5, 20, 40} {
			result := FixedWidth(s, w)
			if n >= w {
				if result != s {
					t.Errorf("FixedWidth(%q, %d) = %q; want input unchanged", s, w, result)
				}
				continue
			}
			if got := utf8.RuneCountInString(result); got != w {
				t.Errorf("FixedWidth(%q, %d) has %d runes; want %d", s, w, got, w)
			}
			if !strings.HasPrefix(result, s) {
				t.Errorf("FixedWidth(%q, %d) = %q; want input as prefix", s, w, result)
			}
		}
	}
}

func TestTakeFirstCharactersProperty(t *testing.T) {
	for _, s := range propertyCorpus {
		for _, n := range []int{0, 1, 3, 10, 50} {
			result := TakeFirstCharacters(s, n, '.')
			if got := utf8.RuneCountInString(result); got != n {
				t.Errorf("TakeFirstCharacters(%q, %d) has %d runes; want %d", s, n, got, n)
			}
		}
	}
}

func TestRemoveDiacriticsIdempotent(t *testing.T) {
	for _, s := range propertyCorpus {
		once := RemoveDiacritics(s)
		twice := RemoveDiacritics(once)
		if once != twice {
			t.Errorf("RemoveDiacritics not idempotent for %q: %q then %q", s, once, twice)
		}
		for _, r := range once {
			if r > 0x7F {
				t.Errorf("RemoveDiacritics(%q) = %q contains non-ASCII %q", s, once, r)
			}
		}
	}
}

func TestTruncateMultipleOccurancesOfCharProperty(t *testing.T) {
	for _, s := range propertyCorpus {
		for _, c := range []rune{' ', '-', 'a', '\a', '本'} {
			result := TruncateMultipleOccurancesOfChar(s, c)

			double := string([]rune{c, c})
			if strings.Contains(result, double) {
				t.Errorf("TruncateMultipleOccurancesOfChar(%q, %q) = %q still contains a run", s, c, result)
			}

			strip := string(c)
			if strings.ReplaceAll(s, strip, "") != strings.ReplaceAll(result, strip, "") {
				t.Errorf("TruncateMultipleOccurancesOfChar(%q, %q) = %q changed other characters", s, c, result)
			}
		}
	}
}

func TestSubstringRoundTrip(t *testing.T) {
	for _, s := range propertyCorpus {
		for _, v := range []rune{'/', ' ', '-', '本', 'e'} {
			if !strings.ContainsRune(s, v) {
				continue
			}
			rebuilt := SubstringToLastIndexOf(s, v) + string(v) + SubstringFromLastIndexOf(s, v)
			if rebuilt != s {
				t.Errorf("round trip of %q around %q = %q", s, v, rebuilt)
			}
		}
	}
}

func TestEmptyInputDefaults(t *testing.T) {
	for _, w := range []int{0, 1, 4} {
		if got := FixedWidth("", w); got != strings.Repeat(" ", w) {
			t.Errorf("FixedWidth(\"\", %d) = %q", w, got)
		}
		for _, p := range []rune{' ', '*', '→'} {
			if got := TakeFirstCharacters("", w, p); got != strings.Repeat(string(p), w) {
				t.Errorf("TakeFirstCharacters(\"\", %d, %q) = %q", w, p, got)
			}
		}
	}

	unchanged := map[string]func(string) string{
		"RemoveDiacritics":        RemoveDiacritics,
		"RemoveSpaces":            RemoveSpaces,
		"ToTitleCase":             ToTitleCase,
		"TruncateMultipleSpaces":  TruncateMultipleSpaces,
		"GetInitials":             GetInitials,
		"TrimWhitespaceAndPunct":  func(s string) string { return TrimWhitespaceAndPunctuation(s) },
		"RemoveInstancesOfString": func(s string) string { return RemoveInstancesOfString(s, []string{"a"}) },
		"RemoveTrailingInstance":  func(s string) string { return RemoveTrailingInstanceOfString(s, "a") },
		"RemoveTrailingInstances": func(s string) string { return RemoveTrailingInstancesOfString(s, []string{"a"}) },
		"SubstringFromLastIndex":  func(s string) string { return SubstringFromLastIndexOf(s, 'a') },
		"SubstringToLastIndex":    func(s string) string { return SubstringToLastIndexOf(s, 'a') },
	}
	for name, fn := range unchanged {
		if got := fn(""); got != "" {
			t.Errorf("%s(\"\") = %q; want \"\"", name, got)
		}
	}
}
