// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package output

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"grimm.is/gdscript-docs/internal/errors"
	"grimm.is/gdscript-docs/internal/markdown"
)

var htmlEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// renderHTML wraps the rendered markdown of doc in a minimal standalone page.
func renderHTML(doc *markdown.Document, text string) ([]byte, error) {
	var body bytes.Buffer
	if err := htmlEngine.Convert([]byte(text), &body); err != nil {
		return nil, errors.Attr(errors.Wrap(err, errors.KindFormat, "failed to render HTML"), "title", doc.Title)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	page.WriteString(html.EscapeString(doc.Title))
	page.WriteString("</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
