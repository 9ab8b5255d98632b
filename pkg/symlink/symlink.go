// Package symlink owns the link topology between a main wiki and its
// sub-wikis. Every sub-wiki link lives at
// <main>/<contentDir>/<linkFolder>/<name>; nothing else in wikiws creates or
// removes entries there.
package symlink

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// Manager creates, removes and lists sub-wiki links.
type Manager struct {
	fs     types.FS
	layout paths.Layout
}

// NewManager creates a Manager. Empty layout fields take their defaults.
func NewManager(fs types.FS, layout paths.Layout) *Manager {
	return &Manager{fs: fs, layout: layout.WithDefaults()}
}

// LinkPath returns the reserved location of subWikiName inside mainWikiPath.
func (m *Manager) LinkPath(mainWikiPath, subWikiName string) string {
	return m.layout.LinkPath(mainWikiPath, subWikiName)
}

// Link points the reserved location for subWikiName at subWikiPath,
// replacing whatever was there. Linking twice with different targets leaves a
// single entry pointing at the last one. A relative subWikiPath is resolved
// against the working directory, so links always carry absolute targets.
func (m *Manager) Link(mainWikiPath, subWikiName, subWikiPath string) error {
	logger := logging.GetLogger("symlink")
	linkPath := m.LinkPath(mainWikiPath, subWikiName)

	if abs, err := filepath.Abs(subWikiPath); err == nil {
		subWikiPath = abs
	}

	fail := func(err error, msg string) error {
		return errors.Wrapf(err, errors.ErrLinkCreationFailed, "%s: %s -> %s", msg, linkPath, subWikiPath).
			WithDetail("source", linkPath).
			WithDetail("target", subWikiPath)
	}

	if err := paths.ValidateFolderName(subWikiName); err != nil {
		return err
	}

	if _, err := m.fs.Stat(subWikiPath); err != nil {
		return fail(err, "link target does not exist")
	}

	if err := m.removeEntry(linkPath); err != nil {
		return fail(err, "cannot replace existing entry")
	}

	if err := m.fs.MkdirAll(m.layout.LinkFolderPath(mainWikiPath), 0755); err != nil {
		return fail(err, "cannot create link folder")
	}

	if err := m.fs.Symlink(subWikiPath, linkPath); err != nil {
		return fail(err, "cannot create link")
	}

	logger.Info().
		Str("link", linkPath).
		Str("target", subWikiPath).
		Msg("Linked sub-wiki")
	return nil
}

// Unlink removes the reserved entry for subWikiName. A missing entry is not
// an error.
func (m *Manager) Unlink(mainWikiPath, subWikiName string) error {
	linkPath := m.LinkPath(mainWikiPath, subWikiName)
	if err := m.removeEntry(linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrLinkRemovalFailed, "cannot remove link %s", linkPath).
			WithDetail("source", linkPath)
	}
	logger := logging.GetLogger("symlink")
	logger.Info().Str("link", linkPath).Msg("Unlinked sub-wiki")
	return nil
}

// removeEntry deletes whatever occupies linkPath. Symlinks are removed
// without following them; anything else is removed recursively.
func (m *Manager) removeEntry(linkPath string) error {
	info, err := m.fs.Lstat(linkPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	logger := logging.GetLogger("symlink")
	if info.Mode()&os.ModeSymlink != 0 {
		logger.Debug().Str("path", linkPath).Msg("Removing existing link")
		err = m.fs.Remove(linkPath)
	} else {
		logger.Warn().Str("path", linkPath).Msg("Replacing non-link entry in link folder")
		err = m.fs.RemoveAll(linkPath)
	}
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// List returns every link in mainWikiPath's link folder, sorted by name.
// Entries that are not symlinks are skipped. A missing link folder yields an
// empty list.
func (m *Manager) List(mainWikiPath string) ([]types.SymlinkEntry, error) {
	folder := m.layout.LinkFolderPath(mainWikiPath)
	dirEntries, err := m.fs.ReadDir(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.SymlinkEntry{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrPathNotFound, "cannot read link folder %s", folder).
			WithDetail("path", folder)
	}

	logger := logging.GetLogger("symlink")
	entries := make([]types.SymlinkEntry, 0, len(dirEntries))
	for _, d := range dirEntries {
		linkPath := filepath.Join(folder, d.Name())
		info, err := m.fs.Lstat(linkPath)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			logger.Debug().Str("path", linkPath).Msg("Skipping non-link entry")
			continue
		}

		target, err := m.fs.Readlink(linkPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", linkPath).Msg("Cannot read link")
		}
		_, statErr := m.fs.Stat(linkPath)

		entries = append(entries, types.SymlinkEntry{
			Name:     d.Name(),
			Path:     linkPath,
			Target:   target,
			Dangling: statErr != nil,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// EnsureIgnored adds the link folder pattern to the main wiki's .gitignore
// unless a line already matches it.
func (m *Manager) EnsureIgnored(mainWikiPath string) error {
	ignorePath := filepath.Join(mainWikiPath, paths.GitIgnoreFile)
	pattern := m.layout.IgnorePattern()

	data, err := m.fs.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrCreationFailed, "cannot read %s", ignorePath).
			WithDetail("path", ignorePath)
	}

	content := string(data)
	if hasIgnoreLine(content, pattern) {
		return nil
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += pattern + "\n"

	if err := m.fs.WriteFile(ignorePath, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrCreationFailed, "cannot write %s", ignorePath).
			WithDetail("path", ignorePath)
	}

	logger := logging.GetLogger("symlink")
	logger.Debug().
		Str("path", ignorePath).
		Str("pattern", pattern).
		Msg("Added link folder to gitignore")
	return nil
}

// hasIgnoreLine accepts the pattern with or without its surrounding slashes.
func hasIgnoreLine(content, pattern string) bool {
	want := strings.Trim(pattern, "/")
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Trim(line, "/") == want {
			return true
		}
	}
	return false
}
