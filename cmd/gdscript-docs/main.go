// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// gdscript-docs converts the class dump written by Godot's GDScript language
// server into markdown pages: one page per class plus an index.
//
// Usage:
//
//	gdscript-docs -o docs/api reference.json
//	gdscript-docs -format=hugo -include docs/assets -o site/content/api reference.json
//	gdscript-docs -dry-run -v -v reference.json
//	gdscript-docs -config gdscript-docs.hcl
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"grimm.is/gdscript-docs/internal/config"
	"grimm.is/gdscript-docs/internal/docgen"
	"grimm.is/gdscript-docs/internal/errors"
	"grimm.is/gdscript-docs/internal/gdscript"
	"grimm.is/gdscript-docs/internal/logging"
	"grimm.is/gdscript-docs/internal/output"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("gdscript-docs", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gdscript-docs [flags] <file.json>...\n\n")
		flags.PrintDefaults()
	}
	bound := config.BindFlags(flags)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	if bound.Version {
		fmt.Fprintln(stdout, version)
		return exitOK
	}

	cfg := config.Default()
	if bound.ConfigFile != "" {
		loaded, err := config.LoadFile(bound.ConfigFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return exitUsage
		}
		cfg = loaded
	}
	cfg = bound.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	logging.SetDefault(logging.New(logging.Config{
		Level:  logging.VerbosityLevel(cfg.Verbose),
		Output: stderr,
	}))
	log := logging.WithComponent("main")
	log.Debug("Output format", "format", cfg.Format)

	files := jsonFiles(cfg.Files)
	if len(files) == 0 {
		fmt.Fprintln(stderr, "Error: no .json input files given")
		flags.Usage()
		return exitUsage
	}
	log.Info("Processing JSON files", "files", strings.Join(files, ", "))

	g := &generator{fs: afero.NewOsFs(), cfg: cfg, log: log}
	failed := 0
	if err := g.copyAssets(); err != nil {
		failed++
		log.WithError(err).Error("Failed to copy assets", errorFields(cfg.Include, err)...)
	}

	for _, f := range files {
		if err := g.process(f); err != nil {
			failed++
			log.WithError(err).Error("Skipping file", errorFields(f, err)...)
		}
	}

	if failed > 0 {
		log.Warn("Finished with failures", "failed", failed, "inputs", len(files))
		return exitFailed
	}
	return exitOK
}

// generator runs the load, convert and save steps for one input at a time.
type generator struct {
	fs  afero.Fs
	cfg config.Config
	log *logging.Logger
}

// copyAssets refreshes the include directory in the output path once,
// before any page is written.
func (g *generator) copyAssets() error {
	if g.cfg.Include == "" {
		return nil
	}
	if g.cfg.DryRun {
		g.log.Info("Dry run: not copying assets", "from", g.cfg.Include, "to", g.cfg.Path)
		return nil
	}
	return output.CopyAssets(g.fs, g.cfg.Include, g.cfg.Path, logging.WithComponent("assets"))
}

func (g *generator) process(path string) error {
	project, classes, err := gdscript.LoadFile(path)
	if err != nil {
		return err
	}
	g.log.Info("Project loaded", "name", project.Name, "version", project.Version)
	g.log.Info("Processing classes", "count", classes.Len(), "file", filepath.Base(path))

	opts := g.cfg.Options()
	docs, err := docgen.Assemble(classes, project, opts)
	if err != nil {
		return err
	}

	w := output.NewWriter(g.fs, g.cfg.Path, opts.Format)
	if g.cfg.DryRun {
		entries, err := w.Preview(docs)
		if err != nil {
			return err
		}
		changed := 0
		for _, e := range entries {
			if e.Changed {
				changed++
			}
		}
		g.log.Info("Dry run: generated documents", "count", len(entries), "changed", changed)
		return nil
	}
	return w.Write(docs)
}

// jsonFiles keeps the inputs with a .json extension, in any letter case.
func jsonFiles(files []string) []string {
	var out []string
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ".json") {
			out = append(out, f)
		}
	}
	return out
}

// errorFields flattens an error's kind and attributes into log key/values.
func errorFields(file string, err error) []any {
	fields := []any{"file", file, "kind", errors.GetKind(err).String()}
	attrs := errors.GetAttributes(err)
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k != "file" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, k, attrs[k])
	}
	return fields
}
