// File: discovery.go
// Title: Pipeline File Discovery
// Description: Finds a pipeline file in well-known locations when none is
//              given on the command line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	strexterror "github.com/msto63/strext/core/error"
)

// DiscoveryOptions defines where Discover looks for a pipeline file
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
	EnvPrefix  string   // Environment override prefix
}

// DefaultDiscoveryOptions searches the working directory, then the user
// configuration directory, for strext.* and pipeline.*
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "strext"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"strext", ".strext", "pipeline"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
	}
}

// Discover loads the first pipeline file found by FindPipelineFile
func Discover(options DiscoveryOptions) (*PipelineFile, error) {
	path, err := FindPipelineFile(options)
	if err != nil {
		return nil, err
	}

	pf, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix})
	if err != nil {
		return nil, strexterror.Wrap(err, fmt.Sprintf("found pipeline file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return pf, nil
}

// FindPipelineFile returns the first candidate that exists as a regular file
func FindPipelineFile(options DiscoveryOptions) (string, error) {
	candidates := ListCandidates(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", strexterror.New(fmt.Sprintf("no pipeline file found in: %s", strings.Join(candidates, ", "))).
		WithCode(strexterror.CodeMissingConfig).
		WithOperation("config.FindPipelineFile").
		WithDetail("searchPaths", candidates)
}

// ListCandidates returns every path Discover would try, in search order
func ListCandidates(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
