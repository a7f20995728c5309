// File: params.go
// Title: Operation Parameters
// Description: Parameter declarations and the conversion of raw string
//              arguments from pipeline files and the command line into
//              typed values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05

package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	strexterror "github.com/msto63/strext/core/error"
	strexterrors "github.com/msto63/strext/core/errors"
)

// ParamType is the type a raw argument is converted to
type ParamType int

const (
	ParamInt ParamType = iota
	ParamRune
	ParamString
	// ParamStrings and ParamRunes consume all remaining arguments and must
	// be declared last
	ParamStrings
	ParamRunes
)

// String returns the name shown in help output
func (t ParamType) String() string {
	switch t {
	case ParamInt:
		return "int"
	case ParamRune:
		return "char"
	case ParamString:
		return "string"
	case ParamStrings:
		return "string..."
	case ParamRunes:
		return "char..."
	default:
		return "unknown"
	}
}

func (t ParamType) variadic() bool {
	return t == ParamStrings || t == ParamRunes
}

// Param declares one operation parameter
type Param struct {
	Name        string
	Type        ParamType
	Description string
	// Default is used when the argument is omitted; empty means required
	// unless the parameter is variadic
	Default string
}

// Usage renders the parameter for help output: <name:type> or [name:type]
func (p Param) Usage() string {
	s := p.Name + ":" + p.Type.String()
	if p.Default != "" || p.Type.variadic() {
		return "[" + s + "]"
	}
	return "<" + s + ">"
}

// Args holds converted argument values by parameter name
type Args map[string]interface{}

// Int returns an int argument, or 0
func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// Rune returns a rune argument, or 0
func (a Args) Rune(name string) rune {
	v, _ := a[name].(rune)
	return v
}

// String returns a string argument, or ""
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Strings returns a variadic string argument
func (a Args) Strings(name string) []string {
	v, _ := a[name].([]string)
	return v
}

// Runes returns a variadic rune argument
func (a Args) Runes(name string) []rune {
	v, _ := a[name].([]rune)
	return v
}

// Bind converts raw arguments to the declared parameters of d
func (d *Definition) Bind(raw []string) (Args, error) {
	args := make(Args, len(d.Params))

	for i, param := range d.Params {
		if param.Type.variadic() {
			rest := []string{}
			if i < len(raw) {
				rest = raw[i:]
			}
			v, err := parseVariadic(param, rest)
			if err != nil {
				return nil, bindError(d.Name, param, err)
			}
			args[param.Name] = v
			return args, nil
		}

		value := param.Default
		if i < len(raw) {
			value = raw[i]
		} else if value == "" {
			return nil, strexterrors.InvalidInput(strexterrors.ModulePipeline, "Bind", d.Name,
				fmt.Sprintf("argument %s (%s)", param.Name, param.Type)).
				WithDetail("param", param.Name)
		}

		v, err := parseValue(param.Type, value)
		if err != nil {
			return nil, bindError(d.Name, param, err)
		}
		args[param.Name] = v
	}

	if len(raw) > len(d.Params) {
		return nil, strexterrors.InvalidInput(strexterrors.ModulePipeline, "Bind", raw[len(d.Params):],
			fmt.Sprintf("at most %d arguments for %s", len(d.Params), d.Name)).
			WithDetail("op", d.Name)
	}

	return args, nil
}

func bindError(op string, param Param, cause error) *strexterror.Error {
	return strexterror.Wrap(cause, fmt.Sprintf("%s: invalid %s", op, param.Name)).
		WithCode(strexterror.CodeInvalidInput).
		WithOperation(strexterrors.ModulePipeline + ".Bind").
		WithDetail("op", op).
		WithDetail("param", param.Name).
		WithDetail("expected", param.Type.String())
}

func parseVariadic(param Param, raw []string) (interface{}, error) {
	switch param.Type {
	case ParamStrings:
		return append([]string(nil), raw...), nil
	case ParamRunes:
		runes := make([]rune, 0, len(raw))
		for _, s := range raw {
			r, err := ParseRune(s)
			if err != nil {
				return nil, err
			}
			runes = append(runes, r)
		}
		return runes, nil
	default:
		return nil, fmt.Errorf("%s is not variadic", param.Type)
	}
}

func parseValue(t ParamType, raw string) (interface{}, error) {
	switch t {
	case ParamInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", raw)
		}
		return n, nil
	case ParamRune:
		return ParseRune(raw)
	case ParamString:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported parameter type %s", t)
	}
}

// runeNames are the spellings accepted for characters that are awkward to
// type on a command line
var runeNames = map[string]rune{
	"space": ' ',
	"tab":   '\t',
	"nbsp":  '\u00a0',
}

// ParseRune accepts a single character, a name from runeNames, or a Go
// escape sequence such as \t or \u00e9
func ParseRune(raw string) (rune, error) {
	if utf8.RuneCountInString(raw) == 1 {
		r, _ := utf8.DecodeRuneInString(raw)
		if r != utf8.RuneError || raw == string(utf8.RuneError) {
			return r, nil
		}
	}

	if r, ok := runeNames[strings.ToLower(raw)]; ok {
		return r, nil
	}

	if strings.HasPrefix(raw, `\`) {
		r, _, tail, err := strconv.UnquoteChar(raw, '\'')
		if err == nil && tail == "" {
			return r, nil
		}
	}

	return 0, fmt.Errorf("not a single character: %q", raw)
}
