package symlink

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/filesystem"
	"github.com/arthur-debert/wikiws/pkg/paths"
)

// workspace creates <root>/main/tiddlers plus two sub-wiki folders
func workspace(t *testing.T) (root, main string) {
	t.Helper()
	root = t.TempDir()
	main = filepath.Join(root, "main")
	require.NoError(t, os.MkdirAll(filepath.Join(main, "tiddlers"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub1"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub2"), 0755))
	return root, main
}

func newManager() *Manager {
	return NewManager(filesystem.NewOS(), paths.Layout{})
}

func TestLinkPath(t *testing.T) {
	m := newManager()
	assert.Equal(t, filepath.Join("/ws/main", "tiddlers", "subwiki", "notes"), m.LinkPath("/ws/main", "notes"))

	custom := NewManager(filesystem.NewOS(), paths.Layout{ContentDir: "content", LinkFolder: "linked"})
	assert.Equal(t, filepath.Join("/ws/main", "content", "linked", "notes"), custom.LinkPath("/ws/main", "notes"))
}

func TestLink(t *testing.T) {
	root, main := workspace(t)
	m := newManager()
	sub1 := filepath.Join(root, "sub1")

	require.NoError(t, m.Link(main, "sub1", sub1))

	linkPath := m.LinkPath(main, "sub1")
	info, err := os.Lstat(linkPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	target, err := os.Readlink(linkPath)
	require.NoError(t, err)
	assert.Equal(t, sub1, target)
}

// chdir moves the test into dir and restores the working directory after
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLinkRelativeTarget(t *testing.T) {
	root, _ := workspace(t)
	chdir(t, root)
	m := newManager()

	require.NoError(t, m.Link("main", "sub1", "sub1"))

	linkPath := m.LinkPath("main", "sub1")
	target, err := os.Readlink(linkPath)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(target), "target %q", target)

	// The link resolves from inside the link folder
	_, err = os.Stat(linkPath)
	assert.NoError(t, err)

	entries, err := m.List("main")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Dangling)
}

func TestRelinkOverwrites(t *testing.T) {
	root, main := workspace(t)
	m := newManager()

	require.NoError(t, m.Link(main, "notes", filepath.Join(root, "sub1")))
	require.NoError(t, m.Link(main, "notes", filepath.Join(root, "sub2")))

	entries, err := os.ReadDir(filepath.Join(main, "tiddlers", "subwiki"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	target, err := os.Readlink(m.LinkPath(main, "notes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sub2"), target)

	// The first target is untouched
	_, err = os.Stat(filepath.Join(root, "sub1"))
	assert.NoError(t, err)
}

func TestLinkReplacesNonLinkEntry(t *testing.T) {
	root, main := workspace(t)
	m := newManager()

	stale := m.LinkPath(main, "sub1")
	require.NoError(t, os.MkdirAll(filepath.Join(stale, "inner"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(stale, "inner", "f.tid"), []byte("x"), 0644))

	require.NoError(t, m.Link(main, "sub1", filepath.Join(root, "sub1")))

	info, err := os.Lstat(stale)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestLinkReplacesDanglingLink(t *testing.T) {
	root, main := workspace(t)
	m := newManager()

	require.NoError(t, os.MkdirAll(filepath.Join(main, "tiddlers", "subwiki"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), m.LinkPath(main, "sub1")))

	require.NoError(t, m.Link(main, "sub1", filepath.Join(root, "sub1")))
	target, err := os.Readlink(m.LinkPath(main, "sub1"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sub1"), target)
}

func TestLinkFailures(t *testing.T) {
	t.Run("missing target", func(t *testing.T) {
		root, main := workspace(t)
		m := newManager()
		missing := filepath.Join(root, "missing")

		err := m.Link(main, "missing", missing)
		require.Error(t, err)
		assert.Equal(t, errors.ErrLinkCreationFailed, errors.GetErrorCode(err))

		details := errors.GetErrorDetails(err)
		assert.Equal(t, m.LinkPath(main, "missing"), details["source"])
		assert.Equal(t, missing, details["target"])
	})

	t.Run("missing target keeps existing link", func(t *testing.T) {
		root, main := workspace(t)
		m := newManager()
		require.NoError(t, m.Link(main, "notes", filepath.Join(root, "sub1")))

		err := m.Link(main, "notes", filepath.Join(root, "missing"))
		require.Error(t, err)

		target, err := os.Readlink(m.LinkPath(main, "notes"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "sub1"), target)
	})

	t.Run("invalid name", func(t *testing.T) {
		root, main := workspace(t)
		err := newManager().Link(main, "../escape", filepath.Join(root, "sub1"))
		require.Error(t, err)
		assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
	})

	t.Run("filesystem without symlinks", func(t *testing.T) {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.MkdirAll("/ws/main/tiddlers", 0755))
		require.NoError(t, fs.MkdirAll("/ws/sub1", 0755))

		err := NewManager(fs, paths.Layout{}).Link("/ws/main", "sub1", "/ws/sub1")
		require.Error(t, err)
		assert.Equal(t, errors.ErrLinkCreationFailed, errors.GetErrorCode(err))
	})
}

func TestManagerOnBasePath(t *testing.T) {
	root := t.TempDir()
	fs := filesystem.NewBasePath(root)
	require.NoError(t, fs.MkdirAll("/main/tiddlers", 0755))
	require.NoError(t, fs.MkdirAll("/sub1", 0755))
	require.NoError(t, fs.MkdirAll("/sub2", 0755))
	m := NewManager(fs, paths.Layout{})

	require.NoError(t, m.Link("/main", "notes", "/sub1"))
	require.NoError(t, m.Link("/main", "notes", "/sub2"))

	// The link lands inside the base path and resolves there
	onDisk := filepath.Join(root, "main", "tiddlers", "subwiki", "notes")
	info, err := os.Stat(onDisk)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	target, err := os.Readlink(onDisk)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sub2"), target)

	entries, err := m.List("/main")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes", entries[0].Name)
	assert.False(t, entries[0].Dangling)

	require.NoError(t, m.Unlink("/main", "notes"))
	entries, err = m.List("/main")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.DirExists(t, filepath.Join(root, "sub2"))
}

func TestUnlink(t *testing.T) {
	root, main := workspace(t)
	m := newManager()
	require.NoError(t, m.Link(main, "sub1", filepath.Join(root, "sub1")))

	require.NoError(t, m.Unlink(main, "sub1"))
	_, err := os.Lstat(m.LinkPath(main, "sub1"))
	assert.True(t, os.IsNotExist(err))

	// The sub-wiki itself survives
	_, err = os.Stat(filepath.Join(root, "sub1"))
	assert.NoError(t, err)

	// Idempotent
	assert.NoError(t, m.Unlink(main, "sub1"))
	assert.NoError(t, m.Unlink(filepath.Join(root, "no-such-main"), "sub1"))
}

func TestLinkAndUnlinkAreLogged(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })
	log.Logger = zerolog.New(&buf)

	root, main := workspace(t)
	m := newManager()
	require.NoError(t, m.Link(main, "sub1", filepath.Join(root, "sub1")))
	require.NoError(t, m.Unlink(main, "sub1"))

	out := buf.String()
	assert.Contains(t, out, `"component":"symlink"`)
	assert.Contains(t, out, "Linked sub-wiki")
	assert.Contains(t, out, "Unlinked sub-wiki")
}

func TestList(t *testing.T) {
	root, main := workspace(t)
	m := newManager()

	entries, err := m.List(main)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, m.Link(main, "sub2", filepath.Join(root, "sub2")))
	require.NoError(t, m.Link(main, "sub1", filepath.Join(root, "sub1")))
	require.NoError(t, os.WriteFile(filepath.Join(main, "tiddlers", "subwiki", "stray.tid"), []byte("x"), 0644))

	entries, err = m.List(main)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sub1", entries[0].Name)
	assert.Equal(t, filepath.Join(root, "sub1"), entries[0].Target)
	assert.Equal(t, m.LinkPath(main, "sub1"), entries[0].Path)
	assert.False(t, entries[0].Dangling)
	assert.Equal(t, "sub2", entries[1].Name)
}

func TestListReportsDangling(t *testing.T) {
	root, main := workspace(t)
	m := newManager()
	require.NoError(t, m.Link(main, "sub1", filepath.Join(root, "sub1")))

	require.NoError(t, os.RemoveAll(filepath.Join(root, "sub1")))

	entries, err := m.List(main)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Dangling)
	assert.Equal(t, filepath.Join(root, "sub1"), entries[0].Target)
}

func TestEnsureIgnored(t *testing.T) {
	t.Run("creates gitignore", func(t *testing.T) {
		_, main := workspace(t)
		m := newManager()

		require.NoError(t, m.EnsureIgnored(main))
		data, err := os.ReadFile(filepath.Join(main, ".gitignore"))
		require.NoError(t, err)
		assert.Equal(t, "/tiddlers/subwiki/\n", string(data))
	})

	t.Run("idempotent", func(t *testing.T) {
		_, main := workspace(t)
		m := newManager()

		for i := 0; i < 3; i++ {
			require.NoError(t, m.EnsureIgnored(main))
		}
		data, err := os.ReadFile(filepath.Join(main, ".gitignore"))
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(data), "tiddlers/subwiki"))
	})

	t.Run("appends after existing content", func(t *testing.T) {
		_, main := workspace(t)
		m := newManager()
		require.NoError(t, os.WriteFile(filepath.Join(main, ".gitignore"), []byte("node_modules\n.DS_Store"), 0644))

		require.NoError(t, m.EnsureIgnored(main))
		data, err := os.ReadFile(filepath.Join(main, ".gitignore"))
		require.NoError(t, err)
		assert.Equal(t, "node_modules\n.DS_Store\n/tiddlers/subwiki/\n", string(data))
	})

	t.Run("equivalent line present", func(t *testing.T) {
		_, main := workspace(t)
		m := newManager()
		original := "tiddlers/subwiki\n"
		require.NoError(t, os.WriteFile(filepath.Join(main, ".gitignore"), []byte(original), 0644))

		require.NoError(t, m.EnsureIgnored(main))
		data, err := os.ReadFile(filepath.Join(main, ".gitignore"))
		require.NoError(t, err)
		assert.Equal(t, original, string(data))
	})
}

func TestHasIgnoreLine(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"", false},
		{"/tiddlers/subwiki/", true},
		{"  /tiddlers/subwiki  \n", true},
		{"# /tiddlers/subwiki/", false},
		{"/tiddlers/", false},
		{"!/tiddlers/subwiki/", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hasIgnoreLine(tt.content, "/tiddlers/subwiki/"), "content %q", tt.content)
	}
}
