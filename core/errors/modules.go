// File: modules.go
// Title: Module-Specific Error Constructors
// Description: Shorthands for the errors raised by stringx, config and the
//              operation pipeline.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package errors

import (
	strexterror "github.com/msto63/strext/core/error"
)

// StringxOutOfRange reports a domain-constraint violation in a stringx function
func StringxOutOfRange(operation, field string, value interface{}, constraint string) *strexterror.Error {
	return OutOfRange(ModuleStringx, operation, field, value, constraint)
}

// ConfigNotFound reports a missing pipeline file
func ConfigNotFound(path string) *strexterror.Error {
	return NotFound(ModuleConfig, "Load", "path", path).
		WithCode(strexterror.CodeMissingConfig)
}

// ConfigInvalid reports a pipeline file that parsed but is unusable
func ConfigInvalid(path, reason string) *strexterror.Error {
	return strexterror.New("invalid pipeline file "+path+": "+reason).
		WithCode(strexterror.CodeInvalidConfig).
		WithOperation(ModuleConfig + ".Validate").
		WithDetails(map[string]interface{}{
			"module":    ModuleConfig,
			"operation": "Validate",
			"path":      path,
			"reason":    reason,
		})
}

// UnknownOperation reports an operation name missing from the registry
func UnknownOperation(name string) *strexterror.Error {
	return NotFound(ModulePipeline, "Lookup", "op", name).
		WithCode(strexterror.CodeUnknownOperation)
}

// StepFailed wraps the failure of a single pipeline step
func StepFailed(index int, op string, cause error) *strexterror.Error {
	return OperationError(ModulePipeline, "Apply", cause, strexterror.CodeStepFailed).
		WithDetail("step", index).
		WithDetail("op", op)
}
