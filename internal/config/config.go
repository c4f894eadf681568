// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package config holds the settings of a documentation run, read from an
// optional HCL file and overridden by command-line flags.
package config

import (
	"grimm.is/gdscript-docs/internal/docgen"
	"grimm.is/gdscript-docs/internal/errors"
)

// MaxHeadingOffset keeps section headings (level 2 + offset) within h1-h6.
const MaxHeadingOffset = 4

// Config is the full configuration surface.
type Config struct {
	// Path is the output directory.
	Path string `hcl:"output_path,optional"`
	// Include is a directory of images and markdown copied into Path.
	Include        string   `hcl:"include_path,optional"`
	Format         string   `hcl:"format,optional"`
	DryRun         bool     `hcl:"dry_run,optional"`
	IncludePrivate bool     `hcl:"include_private,optional"`
	HeadingOffset  int      `hcl:"heading_offset,optional"`
	Verbose        int      `hcl:"verbose,optional"`
	Files          []string `hcl:"files,optional"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Path:   "export",
		Format: string(docgen.FormatMarkdown),
	}
}

// Validate checks the values a run depends on.
func (c Config) Validate() error {
	if c.Path == "" {
		return errors.New(errors.KindValidation, "output path must not be empty")
	}
	if _, err := docgen.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.HeadingOffset < 0 || c.HeadingOffset > MaxHeadingOffset {
		return errors.Errorf(errors.KindValidation, "heading offset %d out of range 0-%d", c.HeadingOffset, MaxHeadingOffset)
	}
	if c.Verbose < 0 {
		return errors.Errorf(errors.KindValidation, "verbosity %d must not be negative", c.Verbose)
	}
	return nil
}

// Options converts the settings into converter options. Call Validate first.
func (c Config) Options() docgen.Options {
	format, err := docgen.ParseFormat(c.Format)
	if err != nil {
		format = docgen.FormatMarkdown
	}
	return docgen.Options{
		IncludePrivate: c.IncludePrivate,
		HeadingOffset:  c.HeadingOffset,
		Format:         format,
	}
}
