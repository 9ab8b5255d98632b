package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wikiws/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseBasics(t *testing.T, fs types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(root, "sub", "dir")
	require.NoError(t, fs.MkdirAll(subDir, 0755))
	require.NoError(t, fs.Mkdir(filepath.Join(root, "single"), 0755))

	entries, err := fs.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	_, err = fs.ReadFile(subDir)
	assert.Error(t, err, "reading a directory should fail")

	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.RemoveAll(filepath.Join(root, "sub")))
	_, err = fs.Stat(subDir)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	fs := NewOS()
	exerciseBasics(t, fs, t.TempDir())
}

func TestNewMemory(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/ws", 0755))
	exerciseBasics(t, fs, "/ws")
}

func TestNewMemory_SymlinkUnsupported(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/ws/target", 0755))

	err := fs.Symlink("/ws/target", "/ws/link")
	assert.Error(t, err)
}

func TestOSSymlinkRoundTrip(t *testing.T) {
	fs := NewOS()
	root := t.TempDir()
	target := filepath.Join(root, "sub1")
	link := filepath.Join(root, "link")
	require.NoError(t, fs.MkdirAll(target, 0755))

	require.NoError(t, fs.Symlink(target, link))

	got, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	info, err = fs.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "Stat should follow the link")
}

func TestNewBasePath_SymlinkAndLstat(t *testing.T) {
	root := t.TempDir()
	fs := NewBasePath(root)

	require.NoError(t, fs.MkdirAll("/main/tiddlers", 0755))
	require.NoError(t, fs.MkdirAll("/sub1", 0755))
	require.NoError(t, fs.Symlink("/sub1", "/main/tiddlers/sub1"))

	info, err := fs.Lstat("/main/tiddlers/sub1")
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	_, err = os.Lstat(filepath.Join(root, "main", "tiddlers", "sub1"))
	assert.NoError(t, err, "link should land inside the base path")
}
