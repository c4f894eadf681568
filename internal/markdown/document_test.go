// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/gdscript-docs/internal/testutil"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Foo", "foo"},
		{"index", "index"},
		{"PlayerController", "playercontroller"},
		{"My_Class", "my-class"},
		{"  Spaced  Out  ", "spaced-out"},
		{"Café", "cafe"},
		{"HTTP/2 Client", "http-2-client"},
		{"__init__", "init"},
		{"!!!", "_"},
		{"", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.title))
			assert.Equal(t, Slug(tt.title), Slug(tt.title))
		})
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "foo.md", Filename("Foo", "md"))
	assert.Equal(t, "foo.html", Filename("Foo", ".html"))
	assert.Equal(t, "foo.md", Filename("Foo", ""))
}

func TestDocument_Path(t *testing.T) {
	index := &Document{Title: IndexTitle, Index: true}
	page := &Document{Title: "Foo"}
	namedIndex := &Document{Title: IndexTitle}

	assert.True(t, index.IsIndex())
	assert.Equal(t, "index.md", index.Path("md"))
	assert.False(t, page.IsIndex())
	assert.Equal(t, "pages/foo.md", page.Path("md"))
	assert.Equal(t, "pages/foo.html", page.Path("html"))
	assert.False(t, namedIndex.IsIndex())
	assert.Equal(t, "pages/index.md", namedIndex.Path("md"))
}

func TestDocument_RenderFrontMatter(t *testing.T) {
	doc := &Document{
		Title: "Foo",
		FrontMatter: &FrontMatter{
			Title:       "Foo",
			Description: "A foo: with a colon.",
			Tags:        []string{"class"},
		},
		Blocks: []string{"# Foo", "A foo: with a colon."},
	}

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, out, doc.String())

	var meta FrontMatter
	body := testutil.SplitFrontMatter(t, out, &meta)
	assert.Equal(t, *doc.FrontMatter, meta)
	assert.Equal(t, "# Foo\n\nA foo: with a colon.\n", strings.TrimLeft(body, "\n"))
}

func TestDocument_RenderPlain(t *testing.T) {
	doc := &Document{Title: "Foo", Blocks: []string{"# Foo"}}
	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, "# Foo\n", out)
}
