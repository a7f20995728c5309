// File: validation.go
// Title: Pipeline File Validation
// Description: Structural checks run on every loaded pipeline file.
//              Operation names and argument types are checked later by the
//              pipeline compiler.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-01

package config

import (
	"fmt"

	"github.com/msto63/strext/core/log"
	"github.com/msto63/strext/utils/stringx"
)

// ValidationResult contains the results of pipeline file validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Validate checks that the file has at least one step, that every step
// names an operation and that the logging settings parse
func (p *PipelineFile) Validate() *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	if len(p.Steps) == 0 {
		result.fail("pipeline has no steps")
	}

	for i, step := range p.Steps {
		if stringx.IsBlank(step.Op) {
			result.fail("step %d: op is required", i+1)
		}
	}

	if !stringx.IsBlank(p.LogLevel) {
		if _, err := log.ParseLevel(p.LogLevel); err != nil {
			result.fail("log_level: %v", err)
		}
	}

	if !stringx.IsBlank(p.LogFormat) {
		if _, err := log.ParseFormat(p.LogFormat); err != nil {
			result.fail("log_format: %v", err)
		}
	}

	return result
}

// LoggerConfig returns the level and format the file asks for, falling back
// to the given defaults for settings it leaves empty
func (p *PipelineFile) LoggerConfig(defaultLevel log.Level, defaultFormat log.Format) (log.Level, log.Format) {
	level, format := defaultLevel, defaultFormat
	if l, err := log.ParseLevel(p.LogLevel); err == nil && !stringx.IsBlank(p.LogLevel) {
		level = l
	}
	if f, err := log.ParseFormat(p.LogFormat); err == nil && !stringx.IsBlank(p.LogFormat) {
		format = f
	}
	return level, format
}
