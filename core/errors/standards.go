// File: standards.go
// Title: Error Standards for strext Modules
// Description: Module identifiers and the generic constructors every module
//              builds its errors with.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation for error standardization
// - 2026-10-14 v0.2.0: Lookups go through the chain instead of a type assertion

package errors

import (
	"fmt"

	strexterror "github.com/msto63/strext/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleConfig   = "config"
	ModulePipeline = "pipeline"
)

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *strexterror.Error {
	return strexterror.New(fmt.Sprintf("invalid input for %s.%s: expected %s", module, operation, expected)).
		WithCode(strexterror.CodeInvalidInput).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		})
}

// OutOfRange creates a standardized range violation error
func OutOfRange(module, operation, field string, value interface{}, constraint string) *strexterror.Error {
	return strexterror.New(fmt.Sprintf("%s out of range for %s.%s: %v (want %s)", field, module, operation, value, constraint)).
		WithCode(strexterror.CodeValueOutOfRange).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":     module,
			"operation":  operation,
			"field":      field,
			"value":      value,
			"constraint": constraint,
		})
}

// NotFound creates a standardized lookup failure
func NotFound(module, operation, kind, name string) *strexterror.Error {
	return strexterror.New(fmt.Sprintf("%s not found: %s", kind, name)).
		WithCode(strexterror.CodeNotFound).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			kind:        name,
		})
}

// OperationError wraps a cause with the module and operation it failed in
func OperationError(module, operation string, cause error, code strexterror.Code) *strexterror.Error {
	var err *strexterror.Error
	if cause != nil {
		err = strexterror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation))
	} else {
		err = strexterror.New(fmt.Sprintf("%s.%s failed", module, operation))
	}
	return err.
		WithCode(code).
		WithOperation(module + "." + operation).
		WithDetail("module", module).
		WithDetail("operation", operation)
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// ExtractModule returns the module recorded on a standardized error
func ExtractModule(err error) string {
	return detailString(err, "module")
}

// ExtractOperation returns the operation recorded on a standardized error
func ExtractOperation(err error) string {
	return detailString(err, "operation")
}

// ExtractDetails returns the details of a standardized error, or nil
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := strexterror.As(err); ok {
		return e.Details()
	}
	return nil
}

func detailString(err error, key string) string {
	e, ok := strexterror.As(err)
	if !ok {
		return ""
	}
	v, ok := e.Detail(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
