// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package docgen

import (
	"fmt"
	"path"
	"strings"

	"grimm.is/gdscript-docs/internal/errors"
	"grimm.is/gdscript-docs/internal/markdown"
)

// Format selects how pages are laid out and linked.
type Format string

const (
	// FormatMarkdown writes plain markdown with relative links.
	FormatMarkdown Format = "markdown"
	// FormatHugo adds YAML front matter and links through Hugo's ref shortcode.
	FormatHugo Format = "hugo"
	// FormatHTML links to .html siblings; the writer renders each page to HTML.
	FormatHTML Format = "html"
)

// Formats lists every supported format.
var Formats = []Format{FormatMarkdown, FormatHugo, FormatHTML}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Errorf(errors.KindValidation, "unknown output format %q (want markdown, hugo or html)", name)
}

// Ext is the file extension pages get in this format.
func (f Format) Ext() string {
	if f == FormatHTML {
		return "html"
	}
	return "md"
}

// pageLink links to the page for title. fromIndex is set when the link is
// written on the index page, which sits one directory above the class pages.
func (f Format) pageLink(text, title string, fromIndex bool) string {
	name := markdown.Filename(title, f.Ext())
	if f == FormatHugo {
		return fmt.Sprintf("[%s]({{< ref %q >}})", text, name)
	}
	if fromIndex {
		return markdown.Link(text, path.Join(markdown.PagesDir, name))
	}
	return markdown.Link(text, name)
}
