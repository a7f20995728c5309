// File: benchmark_test.go
// Title: Performance Benchmarks for stringx Functions
// Description: Benchmarks for the functions that allocate per call or run a
//              Unicode transform chain.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package stringx

import (
	"strings"
	"testing"
)

func BenchmarkFixedWidth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = FixedWidth("column", 24)
	}
}

func BenchmarkTakeFirstCharacters(b *testing.B) {
	text := "これは日本語のテキストで、ベンチマークテストで切り捨てられます"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TakeFirstCharacters(text, 10, ' ')
	}
}

func BenchmarkToTitleCase(b *testing.B) {
	text := "the QUICK brown fox jumps over the lazy dog"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToTitleCase(text)
	}
}

func BenchmarkRemoveDiacritics(b *testing.B) {
	text := strings.Repeat("Crème Brûlée à la carte, s'il vous plaît. ", 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RemoveDiacritics(text)
	}
}

func BenchmarkTruncateMultipleSpaces(b *testing.B) {
	text := strings.Repeat("word    another   ", 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TruncateMultipleSpaces(text)
	}
}

func BenchmarkTrimWhitespaceAndPunctuation(b *testing.B) {
	text := "A sentence that ends with plenty of noise!?!... \t\n"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TrimWhitespaceAndPunctuation(text, '?')
	}
}
