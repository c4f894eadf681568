// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package output

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"grimm.is/gdscript-docs/internal/errors"
	"grimm.is/gdscript-docs/internal/logging"
)

// AssetExtensions are the file types CopyAssets keeps. Matching is exact, so
// ".PNG" is not an asset.
var AssetExtensions = []string{".png", ".md"}

// CopyAssets replaces dest with a copy of src holding only directories and
// asset files. The copy is not atomic: an error part way through leaves
// whatever was copied so far.
func CopyAssets(fs afero.Fs, src, dest string, log *logging.Logger) error {
	if log == nil {
		log = logging.WithComponent("assets")
	}

	info, err := fs.Stat(src)
	if err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindIO, "failed to stat include path"), "path", src)
	}
	if !info.IsDir() {
		return errors.Attr(errors.New(errors.KindIO, "include path is not a directory"), "path", src)
	}

	if within(src, dest) {
		return errors.Attr(errors.Errorf(errors.KindValidation, "include path %s lies inside destination %s", src, dest), "path", src)
	}

	if exists, _ := afero.Exists(fs, dest); exists {
		log.Info("Removing destination", "path", dest)
		if err := fs.RemoveAll(dest); err != nil {
			return errors.Attr(errors.Wrap(err, errors.KindIO, "failed to remove destination"), "path", dest)
		}
	}

	copied := 0
	err = afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if info.IsDir() {
			return fs.MkdirAll(target, info.Mode().Perm()|0700)
		}
		if !isAsset(path) {
			return nil
		}
		log.Debug("Copying asset", "from", path, "to", target)
		copied++
		return copyFile(fs, path, target, info.Mode().Perm())
	})
	if err != nil {
		return errors.Attr(errors.Wrap(err, errors.KindIO, "failed to copy assets"), "path", src)
	}
	log.Info("Copied assets", "count", copied, "from", src, "to", dest)
	return nil
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func isAsset(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range AssetExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

func copyFile(fs afero.Fs, src, dest string, perm os.FileMode) (err error) {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
