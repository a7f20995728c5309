// File: doc.go
// Title: Package Documentation for pipeline
// Description: Package pipeline turns stringx functions into named,
//              parameterized operations and chains them.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-16

// Package pipeline runs ordered chains of string operations.
//
// A Registry maps kebab-case names such as "to-title-case" or
// "take-first-characters" to Definitions. Each Definition declares its
// parameters so raw string arguments from pipeline files and the command
// line can be converted before anything runs:
//
//	p, err := pipeline.CompileSteps("slug", []config.Step{
//		{Op: "remove-diacritics"},
//		{Op: "truncate-multiple-occurances-of-char", Args: config.Args{"-"}},
//	}, pipeline.CompileOptions{})
//
//	out, err := p.Apply(ctx, "crème--brûlée") // "creme-brulee"
//
// Apply checks ctx before every step. Operations that panic with a domain
// error, such as a negative count for take-first-characters, fail the step
// with STEP_FAILED instead of crashing the process.
package pipeline
