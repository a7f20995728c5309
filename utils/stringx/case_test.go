// File: case_test.go
// Title: Unit Tests for Case Transforms
// Description: Tests for ToTitleCase and GetInitials.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-27
// Modified: 2026-10-19

package stringx

import (
	"testing"
	"unicode/utf8"
)

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed case words", "jOHN sMITH", "John Smith"},
		{"empty string", "", ""},
		{"single letters", "a b c", "A B C"},
		{"keeps double spaces", "hello  world", "Hello  World"},
		{"keeps leading space", " leading", " Leading"},
		{"keeps trailing space", "trailing ", "Trailing "},
		{"accented capitals", "ÉCOLE normale", "École Normale"},
		{"apostrophe is not a separator", "o'NEIL", "O'neil"},
		{"leading digit", "123ABC", "123abc"},
		{"tabs are not separators", "hello\tWORLD", "Hello\tworld"},
		{"sharp s is not expanded", "\u00dfTRASSE", "\u00dftrasse"},
		{"ligature is not expanded", "\ufb01SH", "\ufb01sh"},
		{"invalid leading byte", "\xffABC", "\xffabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToTitleCase(tt.input)
			if result != tt.expected {
				t.Errorf("ToTitleCase(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetInitials(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two words", "John Smith", "JS"},
		{"empty string", "", ""},
		{"single word", "john", "J"},
		{"single letters", "a b", "AB"},
		{"extra spaces", "  john   smith ", "JS"},
		{"accented initial", "élodie durand", "ÉD"},
		{"hyphen is not a separator", "john-paul jones", "JJ"},
		{"only spaces", "   ", ""},
		{"sharp s gives one initial", "\u00dftra\u00dfe x", "\u00dfX"},
		{"ligature gives one initial", "\ufb01sh chips", "\ufb01C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetInitials(tt.input)
			if utf8.RuneCountInString(result) != utf8.RuneCountInString(tt.expected) {
				t.Errorf("GetInitials(%q) has %d runes; want %d", tt.input, utf8.RuneCountInString(result), utf8.RuneCountInString(tt.expected))
			}
			if result != tt.expected {
				t.Errorf("GetInitials(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}
