// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level an error is
//              reported with.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers bad input that the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium covers failures with a workaround
	SeverityMedium

	// SeverityHigh covers failures that stop the current run
	SeverityHigh

	// SeverityCritical covers broken invariants inside the program
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeStepFailed:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeValueOutOfRange, CodeUnknownOperation, CodeCanceled:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
