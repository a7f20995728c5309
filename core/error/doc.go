// Package error provides the structured error type shared by all strext packages.
//
// Package: error
// Title: strext Error Handling
// Description: Structured errors carrying a code, a severity, the failing
//              operation and free-form details. The type satisfies the
//              standard error interface and works with errors.Is/As through
//              Unwrap, so callers that only care about the message lose nothing.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with codes and severities
// - 2026-10-14 v0.2.0: Reduced code set to library, config and pipeline concerns
//
// Usage:
//
//	err := error.New("count must not be negative").
//		WithCode(error.CodeValueOutOfRange).
//		WithOperation("stringx.TakeFirstCharacters").
//		WithDetail("count", -1)
//
//	if error.HasCode(err, error.CodeValueOutOfRange) {
//		// handle domain violations
//	}
package error
