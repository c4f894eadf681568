// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package markdown

import (
	"fmt"
	"strings"

	"grimm.is/gdscript-docs/internal/errors"
)

// Builder accumulates markdown blocks in insertion order. Every method
// appends exactly one block and returns the builder so calls can be
// chained. The first malformed input is recorded and turns every later call
// into a no-op; Render and Document report it.
type Builder struct {
	blocks []string
	err    error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(format string, args ...any) *Builder {
	if b.err == nil {
		b.err = errors.Errorf(errors.KindFormat, format, args...)
	}
	return b
}

func (b *Builder) push(block string) *Builder {
	if b.err == nil {
		b.blocks = append(b.blocks, block)
	}
	return b
}

// Heading appends an ATX heading. Level must be between 1 and 6.
func (b *Builder) Heading(level int, text string) *Builder {
	if level < 1 || level > 6 {
		return b.fail("heading level %d out of range 1-6 for %q", level, text)
	}
	return b.push(strings.Repeat("#", level) + " " + singleLine(text))
}

// Paragraph appends free text verbatim.
func (b *Builder) Paragraph(text string) *Builder {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return b.fail("empty paragraph")
	}
	return b.push(text)
}

// Table appends a pipe table. Every row must have one cell per header.
func (b *Builder) Table(headers []string, rows [][]string) *Builder {
	if len(headers) == 0 {
		return b.fail("table has no columns")
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return b.fail("table row %d has %d cells, want %d", i, len(row), len(headers))
		}
	}

	var sb strings.Builder
	writeRow(&sb, headers)
	sb.WriteString("|")
	for _, h := range headers {
		sb.WriteString(strings.Repeat("-", max(len(escapeCell(h)), 3)+2))
		sb.WriteString("|")
	}
	for _, row := range rows {
		sb.WriteString("\n")
		writeRow(&sb, row)
	}
	return b.push(sb.String())
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(escapeCell(c))
		sb.WriteString(" |")
	}
}

// List appends a bulleted list.
func (b *Builder) List(items ...string) *Builder {
	if len(items) == 0 {
		return b.fail("list has no items")
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + singleLine(item)
	}
	return b.push(strings.Join(lines, "\n"))
}

// CodeBlock appends a fenced code block, with an optional language tag.
func (b *Builder) CodeBlock(lang, code string) *Builder {
	if strings.ContainsAny(lang, " \t\n`") {
		return b.fail("invalid code block language %q", lang)
	}
	fence := strings.Repeat("`", max(3, longestRun(code, '`')+1))
	code = strings.TrimRight(code, "\n")
	return b.push(fence + lang + "\n" + code + "\n" + fence)
}

// Link appends a paragraph holding a single link.
func (b *Builder) Link(text, target string) *Builder {
	if target == "" {
		return b.fail("link %q has no target", text)
	}
	return b.push(Link(text, target))
}

// Raw appends pre-rendered markdown.
func (b *Builder) Raw(block string) *Builder {
	block = strings.Trim(block, "\n")
	if block == "" {
		return b.fail("empty raw block")
	}
	return b.push(block)
}

// Render joins the blocks with blank lines.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return joinBlocks(b.blocks), nil
}

// Document snapshots the builder into a titled document.
func (b *Builder) Document(title string) (*Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	blocks := make([]string, len(b.blocks))
	copy(blocks, b.blocks)
	return &Document{Title: title, Blocks: blocks}, nil
}

func joinBlocks(blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// Link formats an inline link.
func Link(text, target string) string {
	text = strings.NewReplacer("[", `\[`, "]", `\]`).Replace(singleLine(text))
	if strings.ContainsAny(target, " ()") {
		target = "<" + target + ">"
	}
	return fmt.Sprintf("[%s](%s)", text, target)
}

// Code formats an inline code span.
func Code(text string) string {
	if text == "" {
		return ""
	}
	fence := strings.Repeat("`", longestRun(text, '`')+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		return fence + " " + text + " " + fence
	}
	return fence + text + fence
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return strings.ReplaceAll(s, "|", `\|`)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func longestRun(s string, r byte) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == r {
			cur++
			best = max(best, cur)
		} else {
			cur = 0
		}
	}
	return best
}
