// Package validate checks filesystem preconditions before any wiki
// operation mutates the disk. Every method here is a pure read.
package validate

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// Validator checks paths against a filesystem and a main wiki layout.
type Validator struct {
	fs     types.FS
	layout paths.Layout
}

// New creates a Validator. Empty layout fields take their defaults.
func New(fs types.FS, layout paths.Layout) *Validator {
	return &Validator{fs: fs, layout: layout.WithDefaults()}
}

// Exists reports whether anything occupies path. A dangling symlink counts.
func (v *Validator) Exists(path string) bool {
	_, err := v.fs.Lstat(path)
	return err == nil
}

// EnsureParentExists fails with PATH_NOT_FOUND when the folder containing
// path does not exist.
func (v *Validator) EnsureParentExists(path string) error {
	return v.EnsureFolderExists(filepath.Dir(path))
}

// EnsureFolderExists fails with PATH_NOT_FOUND unless folder is an existing
// directory, following symlinks.
func (v *Validator) EnsureFolderExists(folder string) error {
	info, err := v.fs.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrPathNotFound, "folder %s does not exist", folder).
				WithDetail("path", folder)
		}
		return errors.Wrapf(err, errors.ErrPathNotFound, "cannot access folder %s", folder).
			WithDetail("path", folder)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrPathNotFound, "%s is not a folder", folder).
			WithDetail("path", folder)
	}
	return nil
}

// EnsureNotExists fails with ALREADY_EXISTS when path is occupied.
func (v *Validator) EnsureNotExists(path string) error {
	if v.Exists(path) {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path).
			WithDetail("path", path)
	}
	return nil
}

// EnsureIsWikiFolder fails with PATH_NOT_FOUND when path is missing and, when
// requireMainStructure is set, with NOT_A_WIKI_FOLDER when the reserved
// content directory is absent.
func (v *Validator) EnsureIsWikiFolder(path string, requireMainStructure bool) error {
	if err := v.EnsureFolderExists(path); err != nil {
		return err
	}
	if !requireMainStructure {
		return nil
	}

	contentPath := v.layout.ContentPath(path)
	info, err := v.fs.Stat(contentPath)
	if err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrNotAWikiFolder,
			"%s is not a main wiki: missing %s folder", path, v.layout.ContentDir).
			WithDetail("path", path).
			WithDetail("expected", contentPath)
	}
	return nil
}
