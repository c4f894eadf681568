// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package output

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/gdscript-docs/internal/docgen"
	"grimm.is/gdscript-docs/internal/errors"
	"grimm.is/gdscript-docs/internal/gdscript"
	"grimm.is/gdscript-docs/internal/logging"
	"grimm.is/gdscript-docs/internal/markdown"
)

func demoDocs(t *testing.T, format docgen.Format) []*markdown.Document {
	t.Helper()
	foo := &gdscript.Class{
		Name:        "Foo",
		Description: "A foo.",
		Methods:     []gdscript.Method{{Name: "bar", Description: "does bar"}},
	}
	set, err := gdscript.NewClasses(foo)
	require.NoError(t, err)
	docs, err := docgen.Assemble(set, gdscript.ProjectInfo{Name: "Demo", Version: "1.0"}, docgen.Options{Format: format})
	require.NoError(t, err)
	return docs
}

func quietLogger(buf *bytes.Buffer) *logging.Logger {
	return logging.New(logging.Config{Level: logging.LevelDebug, Output: buf})
}

func TestWriter_Layout(t *testing.T) {
	fs := afero.NewMemMapFs()
	var logs bytes.Buffer
	w := NewWriter(fs, "/out", docgen.FormatMarkdown)
	w.Logger = quietLogger(&logs)

	require.NoError(t, w.Write(demoDocs(t, docgen.FormatMarkdown)))

	index, err := afero.ReadFile(fs, "/out/index.md")
	require.NoError(t, err)
	assert.Contains(t, string(index), "[Foo](pages/foo.md)")

	page, err := afero.ReadFile(fs, "/out/pages/foo.md")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(page), "# Foo\n"))

	assert.Contains(t, logs.String(), "Creating directory")
}

func TestWriter_OverwritesExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out/pages", 0755))
	require.NoError(t, afero.WriteFile(fs, "/out/pages/foo.md", []byte(strings.Repeat("stale\n", 100)), 0644))

	w := NewWriter(fs, "/out", docgen.FormatMarkdown)
	w.Logger = quietLogger(&bytes.Buffer{})
	require.NoError(t, w.Write(demoDocs(t, docgen.FormatMarkdown)))

	page, err := afero.ReadFile(fs, "/out/pages/foo.md")
	require.NoError(t, err)
	assert.NotContains(t, string(page), "stale")
}

func TestWriter_ReadOnlyFs(t *testing.T) {
	w := NewWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/out", docgen.FormatMarkdown)
	w.Logger = quietLogger(&bytes.Buffer{})

	err := w.Write(demoDocs(t, docgen.FormatMarkdown))
	require.Error(t, err)
	assert.Equal(t, errors.KindIO, errors.GetKind(err))
}

// brokenFs hands out files whose Write or Close fails, and remembers every
// file it opened.
type brokenFs struct {
	afero.Fs
	writeErr error
	closeErr error
	opened   []*brokenFile
}

func (fs *brokenFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := fs.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	bf := &brokenFile{File: f, fs: fs}
	fs.opened = append(fs.opened, bf)
	return bf, nil
}

type brokenFile struct {
	afero.File
	fs     *brokenFs
	closed int
}

func (f *brokenFile) Write(p []byte) (int, error) {
	if f.fs.writeErr != nil {
		return 0, f.fs.writeErr
	}
	return f.File.Write(p)
}

func (f *brokenFile) Close() error {
	f.closed++
	if err := f.File.Close(); err != nil {
		return err
	}
	return f.fs.closeErr
}

func TestWriter_WriteErrorClosesFile(t *testing.T) {
	fs := &brokenFs{Fs: afero.NewMemMapFs(), writeErr: io.ErrShortWrite}
	w := NewWriter(fs, "/out", docgen.FormatMarkdown)
	w.Logger = quietLogger(&bytes.Buffer{})

	err := w.Write(demoDocs(t, docgen.FormatMarkdown))
	require.Error(t, err)
	assert.Equal(t, errors.KindIO, errors.GetKind(err))
	assert.True(t, errors.Is(err, io.ErrShortWrite))

	attrs := errors.GetAttributes(err)
	assert.Equal(t, filepath.Join("/out", "pages", "foo.md"), attrs["path"])
	assert.Equal(t, "Foo", attrs["title"])

	require.Len(t, fs.opened, 1, "writing stops at the first failure")
	assert.Equal(t, 1, fs.opened[0].closed)
}

func TestWriter_CloseErrorReported(t *testing.T) {
	closeErr := io.ErrClosedPipe
	fs := &brokenFs{Fs: afero.NewMemMapFs(), closeErr: closeErr}
	w := NewWriter(fs, "/out", docgen.FormatMarkdown)
	w.Logger = quietLogger(&bytes.Buffer{})

	err := w.Write(demoDocs(t, docgen.FormatMarkdown))
	require.Error(t, err)
	assert.Equal(t, errors.KindIO, errors.GetKind(err))
	assert.True(t, errors.Is(err, closeErr))

	require.Len(t, fs.opened, 1)
	assert.Equal(t, 1, fs.opened[0].closed)
}

func TestWriter_HTML(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "/site", docgen.FormatHTML)
	w.Logger = quietLogger(&bytes.Buffer{})

	require.NoError(t, w.Write(demoDocs(t, docgen.FormatHTML)))

	index, err := afero.ReadFile(fs, "/site/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(index), `<a href="pages/foo.html">Foo</a>`)

	page, err := afero.ReadFile(fs, "/site/pages/foo.html")
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>Foo</title>")
	assert.Contains(t, string(page), "<table>")
	assert.Contains(t, string(page), "<td>does bar</td>")
}

func TestWriter_Preview(t *testing.T) {
	fs := afero.NewMemMapFs()
	var logs bytes.Buffer
	w := NewWriter(fs, "/out", docgen.FormatMarkdown)
	w.Logger = quietLogger(&logs)
	docs := demoDocs(t, docgen.FormatMarkdown)

	entries, err := w.Preview(docs)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.False(t, e.Exists)
		assert.True(t, e.Changed)
		assert.Positive(t, e.Bytes)
	}
	exists, err := afero.DirExists(fs, "/out")
	require.NoError(t, err)
	assert.False(t, exists, "preview must not write")
	assert.Contains(t, logs.String(), "does bar", "new documents are dumped at debug level")

	require.NoError(t, w.Write(docs))
	require.NoError(t, afero.WriteFile(fs, "/out/pages/foo.md", []byte("# Foo\n\nOld text.\n"), 0644))
	logs.Reset()

	entries, err = w.Preview(docs)
	require.NoError(t, err)
	byPath := map[string]PreviewEntry{}
	for _, e := range entries {
		byPath[e.Path] = e
	}
	assert.False(t, byPath[filepath.Join("/out", "index.md")].Changed)
	assert.True(t, byPath[filepath.Join("/out", "pages", "foo.md")].Changed)
	assert.Contains(t, logs.String(), "-Old text.")
}

func TestCopyAssets(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/assets/logo.png":       "png",
		"/assets/README.md":      "# readme",
		"/assets/notes.txt":      "skip",
		"/assets/img/shot.png":   "png",
		"/assets/img/upper.PNG":  "skip",
		"/assets/img/script.gd":  "skip",
		"/assets/empty/.gitkeep": "skip",
		"/out/stale/previous.md": "old",
		"/out/pages/removed.md":  "old",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}

	require.NoError(t, CopyAssets(fs, "/assets", "/out", quietLogger(&bytes.Buffer{})))

	for _, path := range []string{"/out/logo.png", "/out/README.md", "/out/img/shot.png"} {
		ok, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, ok, path)
	}
	for _, path := range []string{"/out/notes.txt", "/out/img/upper.PNG", "/out/img/script.gd", "/out/empty/.gitkeep", "/out/stale/previous.md", "/out/pages/removed.md"} {
		ok, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.False(t, ok, path)
	}
	dir, err := afero.DirExists(fs, "/out/empty")
	require.NoError(t, err)
	assert.True(t, dir, "directories are copied even without assets")
}

func TestCopyAssets_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := quietLogger(&bytes.Buffer{})

	err := CopyAssets(fs, "/missing", "/out", log)
	require.Error(t, err)
	assert.Equal(t, errors.KindIO, errors.GetKind(err))

	require.NoError(t, afero.WriteFile(fs, "/file.md", []byte("x"), os.FileMode(0644)))
	err = CopyAssets(fs, "/file.md", "/out", log)
	require.Error(t, err)

	require.NoError(t, fs.MkdirAll("/out/assets", 0755))
	err = CopyAssets(fs, "/out/assets", "/out", log)
	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
	ok, _ := afero.DirExists(fs, "/out/assets")
	assert.True(t, ok, "source must survive a refused copy")
}
