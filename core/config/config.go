// File: config.go
// Title: Pipeline File Loading
// Description: Parses TOML and YAML pipeline files into PipelineFile and
//              applies environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Scalar step arguments of any type

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	strexterror "github.com/msto63/strext/core/error"
	strexterrors "github.com/msto63/strext/core/errors"
	"github.com/msto63/strext/utils/stringx"
)

// DefaultEnvPrefix is the prefix of environment overrides used by Load
const DefaultEnvPrefix = "STREXT"

// Format represents the pipeline file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Step is one operation of a pipeline
type Step struct {
	Op   string `toml:"op" yaml:"op"`
	Args Args   `toml:"args" yaml:"args"`
}

// String renders the step the way the CLI accepts it
func (s Step) String() string {
	if len(s.Args) == 0 {
		return s.Op
	}
	return s.Op + " " + strings.Join(s.Args, " ")
}

// Args holds step arguments as strings regardless of how they were written
type Args []string

// UnmarshalTOML accepts an array of scalars or a single scalar
func (a *Args) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case []interface{}:
		out := make(Args, 0, len(v))
		for i, item := range v {
			s, err := scalarString(item)
			if err != nil {
				return fmt.Errorf("args[%d]: %w", i, err)
			}
			out = append(out, s)
		}
		*a = out
	default:
		s, err := scalarString(v)
		if err != nil {
			return fmt.Errorf("args: %w", err)
		}
		*a = Args{s}
	}
	return nil
}

// UnmarshalYAML accepts a sequence of scalars or a single scalar
func (a *Args) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		out := make(Args, 0, len(value.Content))
		for i, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: args[%d] must be a scalar", item.Line, i)
			}
			out = append(out, item.Value)
		}
		*a = out
	case yaml.ScalarNode:
		*a = Args{value.Value}
	default:
		return fmt.Errorf("line %d: args must be a list of scalars", value.Line)
	}
	return nil
}

func scalarString(v interface{}) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(s), nil
	default:
		return "", fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

// PipelineFile is a parsed pipeline definition
type PipelineFile struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Steps     []Step `toml:"steps" yaml:"steps"`

	path   string
	format Format
}

// Path returns the file the pipeline was loaded from, if any
func (p *PipelineFile) Path() string {
	return p.path
}

// Format returns the format the pipeline was parsed from
func (p *PipelineFile) Format() Format {
	return p.format
}

// String provides a readable representation of the pipeline file
func (p *PipelineFile) String() string {
	parts := []string{fmt.Sprintf("PipelineFile{format: %s", p.format)}
	if p.Name != "" {
		parts = append(parts, "name: "+p.Name)
	}
	if p.path != "" {
		parts = append(parts, "path: "+p.path)
	}
	parts = append(parts, fmt.Sprintf("steps: %d}", len(p.Steps)))
	return strings.Join(parts, ", ")
}

// LoadOptions defines options for loading a pipeline file
type LoadOptions struct {
	Format    Format // File format (default: auto-detect)
	EnvPrefix string // Environment override prefix; empty disables overrides
}

// Load loads, overrides and validates a pipeline file
func Load(filePath string) (*PipelineFile, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: DefaultEnvPrefix,
	})
}

// LoadWithOptions loads a pipeline file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*PipelineFile, error) {
	if stringx.IsBlank(filePath) {
		return nil, strexterror.New("pipeline file path cannot be empty").
			WithCode(strexterror.CodeRequiredField).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, strexterrors.ConfigNotFound(filePath)
		}
		return nil, strexterror.Wrap(err, "failed to read pipeline file").
			WithCode(strexterror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	pf, err := parseContent(content, format)
	if err != nil {
		return nil, strexterror.Wrap(err, "failed to parse pipeline file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}
	pf.path = filePath

	if options.EnvPrefix != "" {
		applyEnvOverrides(pf, options.EnvPrefix)
	}

	if result := pf.Validate(); !result.Valid {
		return nil, strexterrors.ConfigInvalid(filePath, strings.Join(result.Errors, "; "))
	}

	return pf, nil
}

// LoadFromString parses and validates a pipeline definition held in memory.
// Environment overrides are not applied.
func LoadFromString(content string, format Format) (*PipelineFile, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	pf, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, err
	}

	if result := pf.Validate(); !result.Valid {
		return nil, strexterrors.ConfigInvalid("<string>", strings.Join(result.Errors, "; "))
	}
	return pf, nil
}

// detectFormat determines the pipeline file format from its extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent decodes content into a PipelineFile
func parseContent(content []byte, format Format) (*PipelineFile, error) {
	pf := &PipelineFile{format: format}

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), pf)
		if err != nil {
			return nil, strexterror.Wrap(err, "TOML parse error").
				WithCode(strexterror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, strexterror.New("unknown keys: "+strings.Join(keys, ", ")).
				WithCode(strexterror.CodeInvalidFormat).
				WithOperation("config.parseContent").
				WithDetail("keys", keys)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(pf); err != nil && !errors.Is(err, io.EOF) {
			return nil, strexterror.Wrap(err, "YAML parse error").
				WithCode(strexterror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	default:
		return nil, strexterror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(strexterror.CodeInvalidFormat).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return pf, nil
}

// applyEnvOverrides replaces the logging settings from PREFIX_LOG_LEVEL and
// PREFIX_LOG_FORMAT when they are set
func applyEnvOverrides(pf *PipelineFile, prefix string) {
	if v := os.Getenv(envKey(prefix, "log_level")); v != "" {
		pf.LogLevel = v
	}
	if v := os.Getenv(envKey(prefix, "log_format")); v != "" {
		pf.LogFormat = v
	}
}

// envKey converts a config key to environment variable format:
// log_level with prefix strext -> STREXT_LOG_LEVEL
func envKey(prefix, key string) string {
	return strings.ToUpper(prefix) + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
