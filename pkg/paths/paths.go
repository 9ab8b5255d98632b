package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/wikiws/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for wikiws
	EnvConfigDir = "WIKIWS_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for wikiws
	EnvDataDir = "WIKIWS_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Layout defaults. A main wiki keeps its tiddlers under ContentDir and every
// sub-wiki link under ContentDir/LinkFolder.
const (
	AppDirName = "wikiws"

	DefaultContentDir = "tiddlers"
	DefaultLinkFolder = "subwiki"
	DefaultTagMapFile = "plugins/linonetwo/sub-wiki/FileSystemPaths.tid"

	// TemplateDirName is the template folder inside the data directory
	TemplateDirName = "template"

	// ConfigFileName is the user configuration file inside the config directory
	ConfigFileName = "config.toml"

	// GitIgnoreFile is where the link folder gets excluded from version control
	GitIgnoreFile = ".gitignore"
)

// Layout describes where things live inside a main wiki.
type Layout struct {
	ContentDir string
	LinkFolder string
	TagMapFile string
}

// DefaultLayout returns the layout TiddlyWiki folders use out of the box.
func DefaultLayout() Layout {
	return Layout{
		ContentDir: DefaultContentDir,
		LinkFolder: DefaultLinkFolder,
		TagMapFile: DefaultTagMapFile,
	}
}

// WithDefaults fills empty fields from DefaultLayout.
func (l Layout) WithDefaults() Layout {
	d := DefaultLayout()
	if l.ContentDir == "" {
		l.ContentDir = d.ContentDir
	}
	if l.LinkFolder == "" {
		l.LinkFolder = d.LinkFolder
	}
	if l.TagMapFile == "" {
		l.TagMapFile = d.TagMapFile
	}
	return l
}

// ContentPath returns the reserved content directory of a main wiki.
func (l Layout) ContentPath(mainWikiPath string) string {
	return filepath.Join(mainWikiPath, l.ContentDir)
}

// LinkFolderPath returns the folder that holds every sub-wiki link.
func (l Layout) LinkFolderPath(mainWikiPath string) string {
	return filepath.Join(mainWikiPath, l.ContentDir, l.LinkFolder)
}

// LinkPath returns the reserved link location for one sub-wiki.
func (l Layout) LinkPath(mainWikiPath, subWikiName string) string {
	return filepath.Join(l.LinkFolderPath(mainWikiPath), subWikiName)
}

// TagMapPath returns the tiddler file holding tag associations.
func (l Layout) TagMapPath(mainWikiPath string) string {
	return filepath.Join(mainWikiPath, filepath.FromSlash(l.TagMapFile))
}

// IgnorePattern is the .gitignore line excluding the link folder. Links hold
// host-specific absolute targets and must never be committed.
func (l Layout) IgnorePattern() string {
	return "/" + filepath.ToSlash(filepath.Join(l.ContentDir, l.LinkFolder)) + "/"
}

// ConfigDir returns the config directory for wikiws
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the default user configuration file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// DataDir returns the data directory for wikiws
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.DataHome, AppDirName)
}

// DefaultTemplatePath returns the template used when none is configured.
func DefaultTemplatePath() string {
	return filepath.Join(DataDir(), TemplateDirName)
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func NormalizePath(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", path)
	}

	return filepath.Clean(abs), nil
}

// IsWithin reports whether path lies inside root.
func IsWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
