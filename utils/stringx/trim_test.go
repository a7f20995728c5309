// File: trim_test.go
// Title: Unit Tests for Punctuation-Aware Trimming
// Description: Tests for TrimWhitespaceAndPunctuation with and without an
//              allow-list.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-03

package stringx

import (
	"testing"
)

func TestTrimWhitespaceAndPunctuation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		allowed  []rune
		expected string
	}{
		{"sentence", "Hello, world!  ", nil, "Hello, world"},
		{"empty string", "", nil, ""},
		{"blank string", " \t\n", nil, ""},
		{"only punctuation", "!!!", nil, ""},
		{"leading punctuation kept", "...hello...", nil, "...hello"},
		{"symbols are not punctuation", "price: 5$", nil, "price: 5$"},
		{"trailing newline and tab", "end.\n\t", nil, "end"},
		{"unicode quote", "quote»", nil, "quote"},
		{"nothing to trim", "abc", nil, "abc"},
		{"allowed punctuation stops the scan", "Really?!", []rune{'?'}, "Really?"},
		{"allowed last rune", "Really?!", []rune{'!'}, "Really?!"},
		{"allowed list skips whitespace", "Wait... ", []rune{'.'}, "Wait..."},
		{"empty allow list", "done;", []rune{}, "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TrimWhitespaceAndPunctuation(tt.input, tt.allowed...)
			if result != tt.expected {
				t.Errorf("TrimWhitespaceAndPunctuation(%q, %q) = %q; want %q", tt.input, tt.allowed, result, tt.expected)
			}
		})
	}
}
