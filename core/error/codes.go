// File: codes.go
// Title: Error Code Definitions
// Description: Standardized error codes used to classify failures raised by
//              the string library, the configuration loader and the
//              operation pipeline.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial code set
// - 2026-10-14 v0.2.0: Added pipeline codes, dropped service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// Pipeline
	CodeUnknownOperation Code = "UNKNOWN_OPERATION"
	CodeStepFailed       Code = "STEP_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange,
		CodeUnknownOperation, CodeStepFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	case CodeUnknownOperation, CodeStepFailed:
		return "pipeline"
	default:
		return "generic"
	}
}

// ExitCode maps the code onto a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation":
		return 2
	case "configuration":
		return 3
	case "pipeline":
		return 4
	default:
		return 1
	}
}
