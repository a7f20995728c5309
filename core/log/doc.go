// Package log provides structured, leveled logging for strext.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger with levels, persistent context
//              fields, a correlation ID and four output formats (JSON,
//              text, console, logfmt). Errors from core/error are logged
//              with their code, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Removed async mode, fields are written in sorted order
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Output: os.Stderr,
//		Name:   "strext",
//	})
//
//	logger.Info("pipeline loaded", log.Fields{"steps": 3})
//
//	timer := logger.StartTimer("pipeline.apply")
//	defer timer.Stop()
//
// The string library itself never logs. Logging happens in the pipeline and
// the command line layer.
package log
