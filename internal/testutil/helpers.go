// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package testutil parses rendered pages back into a structural outline so
// tests can assert on headings, tables and links instead of raw strings.
package testutil

import (
	"bytes"
	"testing"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a parsed heading.
type Heading struct {
	Level int
	Text  string
}

// Table is a parsed pipe table.
type Table struct {
	Header []string
	Rows   [][]string
}

// Outline is the structure of a markdown page.
type Outline struct {
	Headings []Heading
	Tables   []Table
	Links    []string // destinations, in document order
}

// HeadingTexts returns the text of every heading.
func (o Outline) HeadingTexts() []string {
	out := make([]string, len(o.Headings))
	for i, h := range o.Headings {
		out[i] = h.Text
	}
	return out
}

// ParseMarkdown parses src with GFM tables enabled.
func ParseMarkdown(t *testing.T, src string) Outline {
	t.Helper()

	source := []byte(src)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))

	var out Outline
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			out.Headings = append(out.Headings, Heading{Level: node.Level, Text: string(node.Text(source))})
		case *ast.Link:
			out.Links = append(out.Links, string(node.Destination))
		case *east.Table:
			out.Tables = append(out.Tables, parseTable(node, source))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk markdown: %v", err)
	}
	return out
}

func parseTable(table *east.Table, source []byte) Table {
	var tbl Table
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, string(cell.Text(source)))
		}
		if row.Kind() == east.KindTableHeader {
			tbl.Header = cells
			continue
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	return tbl
}

// SplitFrontMatter separates a YAML front matter header from the body.
func SplitFrontMatter(t *testing.T, src string, into any) string {
	t.Helper()

	body, err := frontmatter.Parse(bytes.NewReader([]byte(src)), into)
	if err != nil {
		t.Fatalf("parse front matter: %v", err)
	}
	return string(body)
}
