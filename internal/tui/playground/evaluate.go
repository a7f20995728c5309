// ============================================================================
// strext - String Extension Toolkit
// ============================================================================
//
// Package:     playground
// Description: Runs every registered operation over the playground input
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package playground

import (
	"context"

	"github.com/msto63/strext/core/config"
	"github.com/msto63/strext/core/log"
	"github.com/msto63/strext/internal/pipeline"
)

// Result is the outcome of one operation on the current input
type Result struct {
	Op     string
	Args   []string
	Output string
	Err    error
}

type evaluatorEntry struct {
	def      *pipeline.Definition
	pipeline *pipeline.Pipeline
}

// Evaluator holds one single-step pipeline per registered operation, using
// each operation's example arguments
type Evaluator struct {
	entries []evaluatorEntry
}

// NewEvaluator compiles a pipeline for every definition in reg
func NewEvaluator(reg *pipeline.Registry, logger *log.Logger) (*Evaluator, error) {
	if reg == nil {
		reg = pipeline.DefaultRegistry()
	}
	if logger == nil {
		logger = log.Discard()
	}

	defs := reg.Definitions()
	e := &Evaluator{entries: make([]evaluatorEntry, 0, len(defs))}

	for _, def := range defs {
		p, err := pipeline.CompileSteps(def.Name, []config.Step{{Op: def.Name, Args: def.Example}},
			pipeline.CompileOptions{Registry: reg, Logger: logger})
		if err != nil {
			return nil, err
		}
		e.entries = append(e.entries, evaluatorEntry{def: def, pipeline: p})
	}

	return e, nil
}

// Len returns the number of operations evaluated
func (e *Evaluator) Len() int {
	return len(e.entries)
}

// Evaluate applies every operation to text independently
func (e *Evaluator) Evaluate(ctx context.Context, text string) []Result {
	results := make([]Result, len(e.entries))
	for i, entry := range e.entries {
		out, err := entry.pipeline.Apply(ctx, text)
		results[i] = Result{
			Op:     entry.def.Name,
			Args:   entry.def.Example,
			Output: out,
			Err:    err,
		}
	}
	return results
}
