// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package output

import (
	"bytes"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"

	"grimm.is/gdscript-docs/internal/logging"
	"grimm.is/gdscript-docs/internal/markdown"
)

// PreviewEntry summarizes what Write would do for one document.
type PreviewEntry struct {
	Path    string
	Bytes   int
	Exists  bool
	Changed bool
}

// Preview renders every document without touching the filesystem. When a
// previous run left a file at the target path, the difference is logged at
// debug level.
func (w *Writer) Preview(docs []*markdown.Document) ([]PreviewEntry, error) {
	log := w.logger()
	entries := make([]PreviewEntry, 0, len(docs))

	for _, doc := range docs {
		data, err := w.render(doc)
		if err != nil {
			return nil, err
		}
		path := w.Target(doc)
		entry := PreviewEntry{Path: path, Bytes: len(data), Changed: true}

		if old, err := afero.ReadFile(w.Fs, path); err == nil {
			entry.Exists = true
			entry.Changed = !bytes.Equal(old, data)
			if entry.Changed && log.Enabled(logging.LevelDebug) {
				log.Debug("Document differs from existing file", "path", path, "diff", unifiedDiff(path, old, data))
			}
		} else if log.Enabled(logging.LevelDebug) {
			log.Debug("Generated document", "path", path, "document", doc.String())
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func unifiedDiff(path string, old, updated []byte) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(old)),
		B:        difflib.SplitLines(string(updated)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return text
}
