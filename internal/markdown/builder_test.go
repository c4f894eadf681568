// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/gdscript-docs/internal/errors"
	"grimm.is/gdscript-docs/internal/testutil"
)

func TestBuilder_RenderOrder(t *testing.T) {
	out, err := NewBuilder().
		Heading(1, "Foo").
		Paragraph("A foo.").
		List("one", "two").
		CodeBlock("gdscript", "func bar():\n\tpass\n").
		Link("Bar", "bar.md").
		Render()
	require.NoError(t, err)

	want := "# Foo\n\n" +
		"A foo.\n\n" +
		"- one\n- two\n\n" +
		"```gdscript\nfunc bar():\n\tpass\n```\n\n" +
		"[Bar](bar.md)\n"
	assert.Equal(t, want, out)
}

func TestBuilder_Table(t *testing.T) {
	out, err := NewBuilder().
		Table([]string{"Name", "Description"}, [][]string{
			{"bar", "does bar"},
			{"baz", "a|b\nc"},
		}).
		Render()
	require.NoError(t, err)

	assert.Equal(t, "| Name | Description |\n"+
		"|------|-------------|\n"+
		"| bar | does bar |\n"+
		`| baz | a\|b<br>c |`+"\n", out)

	outline := testutil.ParseMarkdown(t, out)
	require.Len(t, outline.Tables, 1)
	assert.Equal(t, []string{"Name", "Description"}, outline.Tables[0].Header)
	assert.Equal(t, []string{"bar", "does bar"}, outline.Tables[0].Rows[0])
}

func TestBuilder_FormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder) *Builder
	}{
		{"inconsistent row", func(b *Builder) *Builder {
			return b.Table([]string{"A", "B"}, [][]string{{"1", "2"}, {"3"}})
		}},
		{"no columns", func(b *Builder) *Builder { return b.Table(nil, nil) }},
		{"heading level zero", func(b *Builder) *Builder { return b.Heading(0, "x") }},
		{"heading level seven", func(b *Builder) *Builder { return b.Heading(7, "x") }},
		{"empty list", func(b *Builder) *Builder { return b.List() }},
		{"link without target", func(b *Builder) *Builder { return b.Link("x", "") }},
		{"bad language", func(b *Builder) *Builder { return b.CodeBlock("go lang", "x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build(NewBuilder().Heading(1, "Start"))
			_, err := b.Render()
			require.Error(t, err)
			assert.True(t, errors.IsFormat(err))

			_, err = b.Document("x")
			assert.True(t, errors.IsFormat(err))
		})
	}
}

func TestBuilder_StickyError(t *testing.T) {
	b := NewBuilder().Heading(9, "bad").Paragraph("ignored")
	assert.Contains(t, b.Err().Error(), "heading level 9")

	_, err := b.Render()
	assert.Equal(t, b.Err(), err)
}

func TestBuilder_Raw(t *testing.T) {
	out, err := NewBuilder().
		Heading(1, "Foo").
		Raw("\n> **Note:** generated.\n\n").
		Paragraph("After.").
		Render()
	require.NoError(t, err)
	assert.Equal(t, "# Foo\n\n> **Note:** generated.\n\nAfter.\n", out)

	_, err = NewBuilder().Raw("\n\n").Render()
	require.Error(t, err)
	assert.True(t, errors.IsFormat(err))
}

func TestBuilder_CodeFenceGrowsPastBackticks(t *testing.T) {
	out, err := NewBuilder().CodeBlock("", "```\ninner\n```").Render()
	require.NoError(t, err)
	assert.Equal(t, "````\n```\ninner\n```\n````\n", out)
}

func TestInlineHelpers(t *testing.T) {
	assert.Equal(t, "[Bar](bar.md)", Link("Bar", "bar.md"))
	assert.Equal(t, `[a\[1\]](x.md)`, Link("a[1]", "x.md"))
	assert.Equal(t, "[x](<my page.md>)", Link("x", "my page.md"))
	assert.Equal(t, "`int`", Code("int"))
	assert.Equal(t, "`` a`b ``", Code("a`b"))
	assert.Equal(t, "", Code(""))
}

func TestDocument_Snapshot(t *testing.T) {
	b := NewBuilder().Heading(1, "Foo")
	doc, err := b.Document("Foo")
	require.NoError(t, err)

	b.Paragraph("later")
	assert.Equal(t, []string{"# Foo"}, doc.Blocks)
	assert.Equal(t, "# Foo\n", doc.Body())
}
