// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package output writes rendered pages and auxiliary assets to disk.
package output

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"grimm.is/gdscript-docs/internal/docgen"
	"grimm.is/gdscript-docs/internal/errors"
	"grimm.is/gdscript-docs/internal/logging"
	"grimm.is/gdscript-docs/internal/markdown"
)

// Writer saves documents under Root: the index at the top, every other page
// in the pages subdirectory.
type Writer struct {
	Fs     afero.Fs
	Root   string
	Format docgen.Format
	Logger *logging.Logger
}

// NewWriter returns a writer on fs rooted at root.
func NewWriter(fs afero.Fs, root string, format docgen.Format) *Writer {
	return &Writer{
		Fs:     fs,
		Root:   root,
		Format: format,
		Logger: logging.WithComponent("output"),
	}
}

func (w *Writer) logger() *logging.Logger {
	if w.Logger == nil {
		return logging.WithComponent("output")
	}
	return w.Logger
}

func (w *Writer) format() docgen.Format {
	if w.Format == "" {
		return docgen.FormatMarkdown
	}
	return w.Format
}

// Target returns the filesystem path doc is written to.
func (w *Writer) Target(doc *markdown.Document) string {
	return filepath.Join(w.Root, filepath.FromSlash(doc.Path(w.format().Ext())))
}

// Write creates the output directories and saves every document. It stops
// at the first failure; files already written stay in place.
func (w *Writer) Write(docs []*markdown.Document) error {
	for _, dir := range []string{w.Root, filepath.Join(w.Root, markdown.PagesDir)} {
		if err := w.ensureDir(dir); err != nil {
			return err
		}
	}

	w.logger().Info("Saving documents", "count", len(docs), "path", w.Root)
	for _, doc := range docs {
		data, err := w.render(doc)
		if err != nil {
			return err
		}
		path := w.Target(doc)
		w.logger().Debug("Saving file", "path", path)
		if err := w.writeFile(path, data); err != nil {
			return errors.Attr(err, "title", doc.Title)
		}
	}
	return nil
}

func (w *Writer) ensureDir(dir string) error {
	exists, err := afero.DirExists(w.Fs, dir)
	if err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindIO, "failed to stat directory"), "path", dir)
	}
	if exists {
		return nil
	}
	w.logger().Info("Creating directory", "path", dir)
	if err := w.Fs.MkdirAll(dir, 0755); err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindIO, "failed to create directory"), "path", dir)
	}
	return nil
}

// writeFile writes data in one go. The handle is closed on every path; a
// close failure is reported only when the write itself succeeded.
func (w *Writer) writeFile(path string, data []byte) (err error) {
	f, err := w.Fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindIO, "failed to open file"), "path", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Attr(errors.Wrap(cerr, errors.KindIO, "failed to close file"), "path", path)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindIO, "failed to write file"), "path", path)
	}
	return nil
}

// render produces the bytes stored for doc in the writer's format.
func (w *Writer) render(doc *markdown.Document) ([]byte, error) {
	text, err := doc.Render()
	if err != nil {
		return nil, err
	}
	if w.format() == docgen.FormatHTML {
		return renderHTML(doc, text)
	}
	return []byte(text), nil
}
