// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package docgen

import (
	"fmt"
	"strings"

	"grimm.is/gdscript-docs/internal/errors"
	"grimm.is/gdscript-docs/internal/gdscript"
	"grimm.is/gdscript-docs/internal/markdown"
)

// Options controls conversion.
type Options struct {
	// IncludePrivate keeps items whose name starts with an underscore.
	IncludePrivate bool
	// HeadingOffset is added to every heading level so pages can be nested
	// under an external document.
	HeadingOffset int
	Format        Format
}

// DefaultOptions returns markdown output with private items hidden.
func DefaultOptions() Options {
	return Options{Format: FormatMarkdown}
}

func (o Options) format() Format {
	if o.Format == "" {
		return FormatMarkdown
	}
	return o.Format
}

func (o Options) level(n int) int {
	return n + o.HeadingOffset
}

// column is one table column. Optional columns are dropped when every row
// leaves them empty.
type column struct {
	header   string
	optional bool
}

// ConvertClass renders one class page. The output depends only on the
// arguments: the same class, class set and options always produce the same
// bytes.
func ConvertClass(class *gdscript.Class, classes *gdscript.Classes, opts Options) (*markdown.Document, error) {
	f := opts.format()
	b := markdown.NewBuilder().Heading(opts.level(1), class.Name)

	parent, hasParent := class.Inherits.Get()
	if hasParent {
		ref := parent
		if _, ok := classes.Get(parent); ok {
			ref = f.pageLink(parent, parent, false)
		}
		b.Paragraph("**Inherits:** " + ref)
	}

	if strings.TrimSpace(class.Description) != "" {
		b.Paragraph(class.Description)
	}

	writeEnums(b, opts, filter(class.Enums, func(e gdscript.Enum) string { return e.Name }, opts))
	writeConstants(b, opts, filter(class.Constants, func(c gdscript.Constant) string { return c.Name }, opts))
	writeSignals(b, opts, filter(class.Signals, func(s gdscript.Signal) string { return s.Name }, opts))
	writeMembers(b, opts, filter(class.Members, func(m gdscript.Member) string { return m.Name }, opts))
	writeMethods(b, opts, filter(class.Methods, func(m gdscript.Method) string { return m.Name }, opts))

	doc, err := b.Document(class.Name)
	if err != nil {
		return nil, errors.Attr(err, "class", class.Name)
	}

	if f == FormatHugo {
		doc.FrontMatter = &markdown.FrontMatter{
			Title:       class.Name,
			Description: summary(class.Description),
			Tags:        []string{"class"},
			Parent:      class.Inherits.OrElse(""),
		}
	}
	return doc, nil
}

func filter[T any](items []T, name func(T) string, opts Options) []T {
	if opts.IncludePrivate {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !gdscript.IsPrivate(name(item)) {
			out = append(out, item)
		}
	}
	return out
}

// section writes a heading and table, or nothing when rows is empty.
func section(b *markdown.Builder, opts Options, title string, cols []column, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	keep := make([]bool, len(cols))
	for i, col := range cols {
		keep[i] = !col.optional
		for _, row := range rows {
			if i < len(row) && row[i] != "" {
				keep[i] = true
				break
			}
		}
	}

	var headers []string
	for i, col := range cols {
		if keep[i] {
			headers = append(headers, col.header)
		}
	}
	trimmed := make([][]string, len(rows))
	for r, row := range rows {
		for i, cell := range row {
			if i < len(keep) && !keep[i] {
				continue
			}
			trimmed[r] = append(trimmed[r], cell)
		}
	}

	b.Heading(opts.level(2), title).Table(headers, trimmed)
}

func writeEnums(b *markdown.Builder, opts Options, enums []gdscript.Enum) {
	rows := make([][]string, 0, len(enums))
	for _, e := range enums {
		values := make([]string, len(e.Values))
		for i, v := range e.Values {
			values[i] = fmt.Sprintf("%s = %d", v.Name, v.Value)
		}
		rows = append(rows, []string{e.Name, markdown.Code(strings.Join(values, ", ")), e.Description})
	}
	section(b, opts, "Enums", []column{
		{header: "Name"},
		{header: "Values", optional: true},
		{header: "Description"},
	}, rows)
}

func writeConstants(b *markdown.Builder, opts Options, constants []gdscript.Constant) {
	rows := make([][]string, 0, len(constants))
	for _, c := range constants {
		rows = append(rows, []string{c.Name, markdown.Code(c.Type), markdown.Code(c.Value), c.Description})
	}
	section(b, opts, "Constants", []column{
		{header: "Name"},
		{header: "Type", optional: true},
		{header: "Value", optional: true},
		{header: "Description"},
	}, rows)
}

func writeSignals(b *markdown.Builder, opts Options, signals []gdscript.Signal) {
	rows := make([][]string, 0, len(signals))
	for _, s := range signals {
		rows = append(rows, []string{s.Name, markdown.Code(strings.Join(s.Arguments, ", ")), s.Description})
	}
	section(b, opts, "Signals", []column{
		{header: "Name"},
		{header: "Arguments", optional: true},
		{header: "Description"},
	}, rows)
}

func writeMembers(b *markdown.Builder, opts Options, members []gdscript.Member) {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		def := ""
		if v, ok := m.Default.Get(); ok {
			// An explicit empty default still shows up as "".
			if v == "" {
				v = `""`
			}
			def = markdown.Code(v)
		}
		rows = append(rows, []string{
			m.Name,
			markdown.Code(m.Type),
			def,
			markdown.Code(m.Setter),
			markdown.Code(m.Getter),
			m.Description,
		})
	}
	section(b, opts, "Properties", []column{
		{header: "Name"},
		{header: "Type", optional: true},
		{header: "Default", optional: true},
		{header: "Setter", optional: true},
		{header: "Getter", optional: true},
		{header: "Description"},
	}, rows)
}

func writeMethods(b *markdown.Builder, opts Options, methods []gdscript.Method) {
	rows := make([][]string, 0, len(methods))
	for _, m := range methods {
		rows = append(rows, []string{methodName(m), markdown.Code(m.ReturnType), m.Description})
	}
	section(b, opts, "Methods", []column{
		{header: "Name"},
		{header: "Returns", optional: true},
		{header: "Description"},
	}, rows)
}

func methodName(m gdscript.Method) string {
	name := m.Name
	if len(m.Arguments) > 0 {
		args := make([]string, len(m.Arguments))
		for i, a := range m.Arguments {
			args[i] = a.Name
			if a.Type != "" {
				args[i] += ": " + a.Type
			}
		}
		name += "(" + strings.Join(args, ", ") + ")"
	}
	if m.Static {
		name = "static " + name
	}
	return name
}

// summary returns the first non-blank line of a description.
func summary(desc string) string {
	for _, line := range strings.Split(desc, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
