// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string extension functions: padding,
//              truncation, case transforms, diacritic removal, cleanup,
//              punctuation-aware trimming and substring extraction.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-27
// Modified: 2026-10-16
//
// Change History:
// - 2026-09-27 v0.1.0: Initial implementation with padding and case helpers
// - 2026-10-03 v0.2.0: Cleanup, trim and substring groups
// - 2026-10-16 v0.3.0: Display-width padding, validated variants

// Package stringx provides string extension functions for strext.
//
// Package: stringx
// Title: String Extension Functions
// Description: Stateless helpers that each take a string (plus a few
//              auxiliary parameters) and return a new string. Every function
//              is independent of the others; none keeps state, logs, or
//              performs I/O.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-27
// Modified: 2026-10-16
//
// # Overview
//
// The functions are grouped by purpose:
//
//   - Padding and truncation (padding.go): FixedWidth, FixedDisplayWidth,
//     TakeFirstCharacters, PadRight
//   - Case transforms (case.go): ToTitleCase, GetInitials
//   - Cleanup (cleanup.go): RemoveDiacritics, RemoveSpaces,
//     RemoveInstancesOfString, RemoveTrailingInstanceOfString,
//     RemoveTrailingInstancesOfString, TruncateMultipleOccurancesOfChar,
//     TruncateMultipleSpaces
//   - Trimming (trim.go): TrimWhitespaceAndPunctuation
//   - Substring extraction (substring.go): SubstringFromLastIndexOf,
//     SubstringToLastIndexOf
//
// # Characters and lengths
//
// A "character" is a Unicode code point. Widths and counts are measured in
// runes, never in bytes, so multi-byte text is never split inside a rune:
//
//	stringx.FixedWidth("ab", 5)                 // "ab   "
//	stringx.TakeFirstCharacters("日本語です", 2, ' ') // "日本"
//
// FixedDisplayWidth is the one exception: it counts terminal cells, so
// East Asian wide characters count twice.
//
// # Empty input
//
// Go strings cannot be nil, so the empty string plays the role of an absent
// value. Each function documents what it returns for "":
//
//	stringx.FixedWidth("", 3)                   // "   "
//	stringx.TakeFirstCharacters("", 3, '*')     // "***"
//	stringx.TrimWhitespaceAndPunctuation("")    // ""
//	stringx.GetInitials("")                     // ""
//	stringx.RemoveDiacritics("")                // ""
//
// # Domain violations
//
// A negative count passed to TakeFirstCharacters is a programming error and
// panics with a *core/error.Error carrying CodeValueOutOfRange, following the
// Must* convention. TakeFirstCharactersWithValidation returns the same error
// instead.
//
// # Examples
//
//	stringx.GetInitials("John Smith")                        // "JS"
//	stringx.ToTitleCase("jOHN sMITH")                        // "John Smith"
//	stringx.RemoveDiacritics("Crème Brûlée")                 // "Creme Brulee"
//	stringx.TrimWhitespaceAndPunctuation("Hello, world!  ")  // "Hello, world"
//	stringx.TruncateMultipleSpaces("a   b  c")               // "a b c"
//	stringx.RemoveTrailingInstanceOfString("report_final_final", "_final")
//	// "report_final"
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. Case mappers and
// Unicode transformers from golang.org/x/text are stateful, so they are
// created per call and never shared.
package stringx
