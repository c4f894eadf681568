// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package markdown

import (
	"bytes"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"grimm.is/gdscript-docs/internal/errors"
)

// IndexTitle is the title of the navigation page.
const IndexTitle = "index"

// PagesDir holds every non-index document.
const PagesDir = "pages"

// Document is one output page before serialization.
type Document struct {
	Title       string
	FrontMatter *FrontMatter
	Blocks      []string
	// Index marks the navigation page, the only document written at the top
	// of the output tree. A class titled "index" is still a regular page.
	Index bool
}

// FrontMatter is the YAML header written ahead of Hugo pages.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Parent      string   `yaml:"parent,omitempty"`
	Weight      int      `yaml:"weight,omitempty"`
}

// IsIndex reports whether d is the navigation page.
func (d *Document) IsIndex() bool {
	return d.Index
}

// Filename returns the bare file name for d with the given extension.
func (d *Document) Filename(ext string) string {
	return Filename(d.Title, ext)
}

// Path returns the slash-separated location of d relative to the output root.
func (d *Document) Path(ext string) string {
	if d.IsIndex() {
		return d.Filename(ext)
	}
	return path.Join(PagesDir, d.Filename(ext))
}

// Body returns the markdown body without front matter.
func (d *Document) Body() string {
	return joinBlocks(d.Blocks)
}

// Render returns the full page text: front matter, if any, then the body.
func (d *Document) Render() (string, error) {
	if d.FrontMatter == nil {
		return d.Body(), nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.FrontMatter); err != nil {
		return "", errors.Wrapf(err, errors.KindFormat, "front matter for %q", d.Title)
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrapf(err, errors.KindFormat, "front matter for %q", d.Title)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(buf.Bytes())
	sb.WriteString("---\n\n")
	sb.WriteString(d.Body())
	return sb.String(), nil
}

// String renders d for log output, ignoring front matter errors.
func (d *Document) String() string {
	s, err := d.Render()
	if err != nil {
		return d.Body()
	}
	return s
}
