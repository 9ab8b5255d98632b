package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wikiws/pkg/filesystem"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment holds the folders a wikiws run touches
type TestEnvironment struct {
	Root         string
	Workspace    string
	ConfigDir    string
	DataDir      string
	StateDir     string
	TemplatePath string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates the environment and points WIKIWS_CONFIG_DIR,
// WIKIWS_DATA_DIR and XDG_STATE_HOME into it. The default template location
// is filled with TemplateTree.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	env.Workspace = filepath.Join(env.Root, "ws")
	env.ConfigDir = filepath.Join(env.Root, "config")
	env.DataDir = filepath.Join(env.Root, "data")
	env.StateDir = filepath.Join(env.Root, "state")
	env.TemplatePath = filepath.Join(env.DataDir, paths.TemplateDirName)

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)

	if err := env.FS.MkdirAll(env.Workspace, 0755); err != nil {
		t.Fatalf("Failed to create workspace: %v", err)
	}
	CreateFileTree(t, env.FS, env.TemplatePath, TemplateTree())

	return env
}

// WithFileTree creates tree inside the workspace
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.Workspace, tree)
}

// MainWiki lays out a bare main wiki named name in the workspace and
// returns its path
func (env *TestEnvironment) MainWiki(name string) string {
	env.t.Helper()
	path := filepath.Join(env.Workspace, name)
	CreateFileTree(env.t, env.FS, path, FileTree{
		paths.DefaultContentDir: FileTree{},
	})
	return path
}

// Path joins elem onto the workspace
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.Workspace}, elem...)...)
}
