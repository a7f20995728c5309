package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	strexterror "github.com/msto63/strext/core/error"
)

func TestOutOfRange(t *testing.T) {
	err := StringxOutOfRange("TakeFirstCharacters", "count", -2, "count >= 0")

	assert.Equal(t, "count out of range for stringx.TakeFirstCharacters: -2 (want count >= 0)", err.Error())
	assert.Equal(t, strexterror.CodeValueOutOfRange, err.Code())
	assert.Equal(t, "stringx.TakeFirstCharacters", err.Operation())
	assert.True(t, IsModuleError(err, ModuleStringx))
	assert.Equal(t, "TakeFirstCharacters", ExtractOperation(err))
	assert.Equal(t, -2, ExtractDetails(err)["value"])
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput(ModulePipeline, "Bind", "ab", "single rune")
	assert.Equal(t, strexterror.CodeInvalidInput, err.Code())
	assert.Equal(t, "invalid input for pipeline.Bind: expected single rune", err.Error())
	assert.Equal(t, "single rune", ExtractDetails(err)["expected"])
}

func TestUnknownOperation(t *testing.T) {
	err := UnknownOperation("shout")
	assert.Equal(t, strexterror.CodeUnknownOperation, err.Code())
	assert.Equal(t, "op not found: shout", err.Error())
	assert.Equal(t, ModulePipeline, ExtractModule(err))
}

func TestStepFailedKeepsCause(t *testing.T) {
	cause := StringxOutOfRange("TakeFirstCharacters", "count", -1, "count >= 0")
	err := StepFailed(2, "take-first", cause)

	assert.Equal(t, strexterror.CodeStepFailed, err.Code())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ModulePipeline, ExtractModule(err))
	assert.Equal(t, 2, ExtractDetails(err)["step"])
	assert.Equal(t, "take-first", ExtractDetails(err)["op"])
}

func TestConfigErrors(t *testing.T) {
	missing := ConfigNotFound("/tmp/none.toml")
	assert.Equal(t, strexterror.CodeMissingConfig, missing.Code())
	assert.Equal(t, ModuleConfig, ExtractModule(missing))

	invalid := ConfigInvalid("p.yaml", "no steps")
	assert.Equal(t, strexterror.CodeInvalidConfig, invalid.Code())
	assert.Equal(t, "invalid pipeline file p.yaml: no steps", invalid.Error())
}

func TestExtractFromForeignErrors(t *testing.T) {
	plain := errors.New("plain")
	assert.Empty(t, ExtractModule(plain))
	assert.Empty(t, ExtractOperation(plain))
	assert.Nil(t, ExtractDetails(plain))

	wrapped := fmt.Errorf("outer: %w", UnknownOperation("x"))
	assert.True(t, IsModuleError(wrapped, ModulePipeline))
}
