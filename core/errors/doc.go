// Package errors provides the standard error constructors used by strext modules.
//
// Package: errors
// Title: Shared Error Constructors
// Description: Every module (stringx, config, pipeline) reports failures
//              through the constructors in this package instead of calling
//              fmt.Errorf or errors.New directly. The resulting errors carry
//              the module and operation as details so the CLI can report
//              them uniformly.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-29 v0.1.0: Initial constructors
// - 2026-10-14 v0.2.0: Added pipeline constructors
//
// Usage:
//
//	if count < 0 {
//		panic(errors.StringxOutOfRange("TakeFirstCharacters", "count", count, "count >= 0"))
//	}
//
//	if errors.IsModuleError(err, errors.ModulePipeline) {
//		// pipeline failure
//	}
package errors
