// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"flag"
	"strconv"
)

// Flags binds command-line flags to a Config and remembers which ones were
// given, so that only those override a config file.
type Flags struct {
	values     Config
	ConfigFile string
	Version    bool
	set        *flag.FlagSet
}

// BindFlags registers every setting on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{values: Default(), set: fs}

	fs.StringVar(&f.values.Path, "path", f.values.Path, "Output directory")
	fs.StringVar(&f.values.Path, "o", f.values.Path, "Output directory (shorthand)")
	fs.BoolVar(&f.values.DryRun, "dry-run", false, "Render documents without writing them")
	fs.StringVar(&f.values.Include, "include", "", "Directory of .png and .md assets copied into the output directory")
	fs.Var((*counter)(&f.values.Verbose), "v", "Increase verbosity (repeatable)")
	fs.StringVar(&f.values.Format, "format", f.values.Format, "Output format: markdown, hugo, html")
	fs.BoolVar(&f.values.IncludePrivate, "private", false, "Document items whose name starts with an underscore")
	fs.IntVar(&f.values.HeadingOffset, "heading-offset", 0, "Add this to every heading level")
	fs.StringVar(&f.ConfigFile, "config", "", "HCL settings file")
	fs.BoolVar(&f.Version, "version", false, "Print the version and exit")
	return f
}

// Apply overlays the flags that were set explicitly onto base. Positional
// arguments are appended to base.Files.
func (f *Flags) Apply(base Config) Config {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "path", "o":
			base.Path = f.values.Path
		case "dry-run":
			base.DryRun = f.values.DryRun
		case "include":
			base.Include = f.values.Include
		case "v":
			base.Verbose = f.values.Verbose
		case "format":
			base.Format = f.values.Format
		case "private":
			base.IncludePrivate = f.values.IncludePrivate
		case "heading-offset":
			base.HeadingOffset = f.values.HeadingOffset
		}
	})
	base.Files = append(append([]string(nil), base.Files...), f.set.Args()...)
	return base
}

// counter is a flag.Value that counts how many times it was given.
type counter int

func (c *counter) String() string {
	if c == nil {
		return "0"
	}
	return strconv.Itoa(int(*c))
}

func (c *counter) Set(s string) error {
	if s == "true" {
		*c++
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*c = counter(n)
	return nil
}

func (c *counter) IsBoolFlag() bool { return true }
