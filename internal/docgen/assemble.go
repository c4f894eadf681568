// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package docgen

import (
	"grimm.is/gdscript-docs/internal/errors"
	"grimm.is/gdscript-docs/internal/gdscript"
	"grimm.is/gdscript-docs/internal/markdown"
)

// Assemble converts every class, in load order, and appends the index page.
// It fails if two documents share a file name.
func Assemble(classes *gdscript.Classes, project gdscript.ProjectInfo, opts Options) ([]*markdown.Document, error) {
	docs := make([]*markdown.Document, 0, classes.Len()+1)
	for _, class := range classes.All() {
		doc, err := ConvertClass(class, classes, opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	index, err := BuildIndex(classes, project, opts)
	if err != nil {
		return nil, err
	}
	docs = append(docs, index)

	if err := CheckCollisions(docs, opts.format()); err != nil {
		return nil, err
	}
	return docs, nil
}

// BuildIndex renders the navigation page: project header and a link to every
// class page, sorted by name with plain byte-wise comparison.
func BuildIndex(classes *gdscript.Classes, project gdscript.ProjectInfo, opts Options) (*markdown.Document, error) {
	f := opts.format()

	b := markdown.NewBuilder().Heading(opts.level(1), project.Name)
	if project.Version != "" {
		b.Paragraph("Version " + project.Version)
	}
	if project.Description != "" {
		b.Paragraph(project.Description)
	}

	b.Heading(opts.level(2), "Classes")
	names := classes.Names()
	if len(names) == 0 {
		b.Paragraph("No classes.")
	} else {
		links := make([]string, len(names))
		for i, name := range names {
			links[i] = f.pageLink(name, name, true)
		}
		b.List(links...)
	}

	doc, err := b.Document(markdown.IndexTitle)
	if err != nil {
		return nil, err
	}
	doc.Index = true
	if f == FormatHugo {
		doc.FrontMatter = &markdown.FrontMatter{
			Title:       project.Name,
			Description: summary(project.Description),
			Weight:      1,
		}
	}
	return doc, nil
}

// CheckCollisions reports the first pair of documents sharing a file name.
// The index page takes part, so a class whose name slugs to "index" is
// rejected even though its page would live under pages/.
func CheckCollisions(docs []*markdown.Document, f Format) error {
	seen := make(map[string]*markdown.Document, len(docs))
	for _, doc := range docs {
		name := doc.Filename(f.Ext())
		if other, dup := seen[name]; dup {
			err := errors.Errorf(errors.KindCollision, "%s %q and %s %q share the file name %s",
				kindOf(other), other.Title, kindOf(doc), doc.Title, name)
			err = errors.Attr(err, "filename", name)
			return errors.Attr(err, "titles", []string{other.Title, doc.Title})
		}
		seen[name] = doc
	}
	return nil
}

func kindOf(doc *markdown.Document) string {
	if doc.IsIndex() {
		return "index page"
	}
	return "class"
}
