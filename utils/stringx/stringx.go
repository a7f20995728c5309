// File: stringx.go
// Title: Core String Predicates
// Description: Emptiness checks shared by the other groups and by callers
//              that validate user input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-27
// Modified: 2026-09-27
//
// Change History:
// - 2026-09-27 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
