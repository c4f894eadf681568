// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	"grimm.is/gdscript-docs/internal/errors"
)

// LoadFile reads an HCL settings file on top of Default. The process
// environment is available to expressions as the env object:
//
//	output_path = "${env.HOME}/docs"
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Attr(errors.Wrap(err, errors.KindIO, "failed to read config file"), "file", path)
	}
	return LoadBytes(path, data, os.Environ())
}

// LoadBytes decodes HCL settings. filename selects the syntax by extension
// (.hcl or .json) and is used in diagnostics.
func LoadBytes(filename string, data []byte, environ []string) (Config, error) {
	cfg := Default()
	if err := hclsimple.Decode(filename, data, evalContext(environ), &cfg); err != nil {
		return Config{}, errors.Attr(errors.Wrap(err, errors.KindValidation, "failed to decode config"), "file", filename)
	}
	return cfg, nil
}

func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
