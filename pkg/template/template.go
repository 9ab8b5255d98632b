// Package template instantiates new wikis by copying a template folder.
package template

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/types"
	"github.com/arthur-debert/wikiws/pkg/validate"
)

// Provisioner copies TemplatePath into new wiki folders. The template must
// carry the layout's content folder, so every copy is a main wiki as is.
type Provisioner struct {
	FS           types.FS
	TemplatePath string
	Layout       paths.Layout
}

// New creates a Provisioner for the given template folder.
func New(fsys types.FS, templatePath string, layout paths.Layout) *Provisioner {
	return &Provisioner{FS: fsys, TemplatePath: templatePath, Layout: layout.WithDefaults()}
}

// CreateFromTemplate copies the whole template tree to destination and
// nothing else. A failed copy may leave destination partially populated.
func (p *Provisioner) CreateFromTemplate(destination string) error {
	logger := logging.GetLogger("template")
	v := validate.New(p.FS, p.Layout)

	if err := v.EnsureParentExists(destination); err != nil {
		return err
	}
	if err := p.EnsureTemplate(); err != nil {
		return err
	}
	if err := v.EnsureNotExists(destination); err != nil {
		return err
	}

	logger.Debug().
		Str("template", p.TemplatePath).
		Str("destination", destination).
		Msg("Copying template")

	if err := p.copyTree(p.TemplatePath, destination); err != nil {
		return errors.Wrapf(err, errors.ErrCreationFailed, "failed to create wiki at %s", destination).
			WithDetail("path", destination).
			WithDetail("template", p.TemplatePath)
	}

	logger.Info().Str("destination", destination).Msg("Wiki created from template")
	return nil
}

// EnsureTemplate fails with TEMPLATE_MISSING unless the template is a folder
// holding the content folder.
func (p *Provisioner) EnsureTemplate() error {
	info, err := p.FS.Stat(p.TemplatePath)
	if err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrTemplateMissing, "wiki template %s not found", p.TemplatePath).
			WithDetail("path", p.TemplatePath)
	}

	contentPath := p.Layout.ContentPath(p.TemplatePath)
	info, err = p.FS.Stat(contentPath)
	if err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrTemplateMissing, "wiki template %s has no %s folder",
			p.TemplatePath, p.Layout.ContentDir).
			WithDetail("path", p.TemplatePath).
			WithDetail("expected", contentPath)
	}
	return nil
}

func (p *Provisioner) copyTree(src, dst string) error {
	info, err := p.FS.Stat(src)
	if err != nil {
		return err
	}
	if err := p.FS.Mkdir(dst, info.Mode().Perm()|0700); err != nil {
		return err
	}

	entries, err := p.FS.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		info, err := p.FS.Lstat(from)
		if err != nil {
			return err
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			err = p.copyLink(from, to)
		case info.IsDir():
			err = p.copyTree(from, to)
		case info.Mode().IsRegular():
			err = p.copyFile(from, to, info.Mode().Perm())
		default:
			logger := logging.GetLogger("template")
			logger.Debug().Str("path", from).Msg("Skipping special file")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Provisioner) copyFile(from, to string, perm fs.FileMode) error {
	data, err := p.FS.ReadFile(from)
	if err != nil {
		return err
	}
	return p.FS.WriteFile(to, data, perm)
}

// copyLink recreates a symlink verbatim, relative targets included.
func (p *Provisioner) copyLink(from, to string) error {
	target, err := p.FS.Readlink(from)
	if err != nil {
		return err
	}
	return p.FS.Symlink(target, to)
}
