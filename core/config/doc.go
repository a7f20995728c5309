// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads pipeline definition files for strext
//              from TOML or YAML, applies environment overrides, validates
//              them and watches them for changes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: fsnotify based watching, file discovery

/*
Package config loads pipeline definition files.

Package: config
Title: Pipeline File Configuration
Description: A pipeline file names an ordered list of stringx operations and
             the logging settings used while running them. Files are TOML by
             default; YAML is used for the .yaml and .yml extensions.
Author: msto63
Version: v0.2.0
Created: 2026-10-01
Modified: 2026-10-17

File Format:

TOML:

	name       = "clean-names"
	log_level  = "info"
	log_format = "console"

	[[steps]]
	op = "remove-diacritics"

	[[steps]]
	op   = "fixed-width"
	args = [20]

YAML:

	name: clean-names
	steps:
	  - op: truncate-multiple-spaces
	  - op: take-first-characters
	    args: [10, "*"]

Step arguments may be written as strings, numbers or booleans; they are kept
as strings and converted by the operation registry.

Environment Overrides:

STREXT_LOG_LEVEL and STREXT_LOG_FORMAT replace log_level and log_format after
the file is parsed. The prefix is configurable through LoadOptions.EnvPrefix.

Usage Examples:

	pf, err := config.Load("pipeline.toml")
	if err != nil {
		return err
	}

	err = config.Watch(ctx, "pipeline.toml", func(pf *config.PipelineFile, err error) {
		if err != nil {
			logger.LogError(err)
			return
		}
		// recompile
	})

Discovery:

Discover looks for strext.toml, strext.yaml, strext.yml, pipeline.toml and so
on in the working directory and the user configuration directory.

Error Handling:

Errors are *core/error.Error values. A missing file carries MISSING_CONFIG,
a parse failure INVALID_FORMAT and a file that fails validation
INVALID_CONFIG.
*/
package config
