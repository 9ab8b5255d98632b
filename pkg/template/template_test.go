package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/filesystem"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// memoryTemplate builds /tpl with a.txt and b/c.txt plus the /ws parent
func memoryTemplate(t *testing.T) types.FS {
	t.Helper()
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/tpl/b", 0755))
	require.NoError(t, fs.MkdirAll("/tpl/tiddlers", 0755))
	require.NoError(t, fs.WriteFile("/tpl/a.txt", []byte("alpha"), 0644))
	require.NoError(t, fs.WriteFile("/tpl/b/c.txt", []byte("gamma"), 0644))
	require.NoError(t, fs.MkdirAll("/ws", 0755))
	return fs
}

func TestCreateFromTemplate(t *testing.T) {
	fs := memoryTemplate(t)
	p := New(fs, "/tpl", paths.Layout{})

	require.NoError(t, p.CreateFromTemplate("/ws/notes"))

	a, err := fs.ReadFile("/ws/notes/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(a))

	c, err := fs.ReadFile("/ws/notes/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "gamma", string(c))

	info, err := fs.Stat("/ws/notes/tiddlers")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Template untouched
	a, err = fs.ReadFile("/tpl/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(a))
}

func TestCreateFromTemplateErrors(t *testing.T) {
	tests := []struct {
		name        string
		template    string
		destination string
		setup       func(t *testing.T, fs types.FS)
		wantCode    errors.ErrorCode
	}{
		{
			name:        "parent missing",
			template:    "/tpl",
			destination: "/nowhere/notes",
			wantCode:    errors.ErrPathNotFound,
		},
		{
			name:        "template missing",
			template:    "/no-template",
			destination: "/ws/notes",
			wantCode:    errors.ErrTemplateMissing,
		},
		{
			name:        "template is a file",
			template:    "/tpl/a.txt",
			destination: "/ws/notes",
			wantCode:    errors.ErrTemplateMissing,
		},
		{
			name:        "template without content folder",
			template:    "/tpl",
			destination: "/ws/notes",
			setup: func(t *testing.T, fs types.FS) {
				require.NoError(t, fs.RemoveAll("/tpl/tiddlers"))
			},
			wantCode: errors.ErrTemplateMissing,
		},
		{
			name:        "destination exists",
			template:    "/tpl",
			destination: "/ws/notes",
			setup: func(t *testing.T, fs types.FS) {
				require.NoError(t, fs.MkdirAll("/ws/notes", 0755))
				require.NoError(t, fs.WriteFile("/ws/notes/keep.txt", []byte("mine"), 0644))
			},
			wantCode: errors.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := memoryTemplate(t)
			if tt.setup != nil {
				tt.setup(t, fs)
			}

			err := New(fs, tt.template, paths.Layout{}).CreateFromTemplate(tt.destination)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
		})
	}
}

func TestCreateFromTemplateDoesNotOverwrite(t *testing.T) {
	fs := memoryTemplate(t)
	require.NoError(t, fs.MkdirAll("/ws/notes", 0755))
	require.NoError(t, fs.WriteFile("/ws/notes/a.txt", []byte("mine"), 0644))

	err := New(fs, "/tpl", paths.Layout{}).CreateFromTemplate("/ws/notes")
	require.Error(t, err)

	a, err := fs.ReadFile("/ws/notes/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "mine", string(a))
}

func TestCreateFromTemplateOnDisk(t *testing.T) {
	root := t.TempDir()
	tpl := filepath.Join(root, "tpl")
	require.NoError(t, os.MkdirAll(filepath.Join(tpl, "tiddlers"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tpl, "tiddlywiki.info"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tpl, "start.sh"), []byte("#!/bin/sh\n"), 0755))
	require.NoError(t, os.Symlink("tiddlywiki.info", filepath.Join(tpl, "info-link")))

	dest := filepath.Join(root, "wiki")
	require.NoError(t, New(filesystem.NewOS(), tpl, paths.Layout{}).CreateFromTemplate(dest))

	info, err := os.Stat(filepath.Join(dest, "start.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	target, err := os.Readlink(filepath.Join(dest, "info-link"))
	require.NoError(t, err)
	assert.Equal(t, "tiddlywiki.info", target)

	info, err = os.Stat(filepath.Join(dest, "tiddlers"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateFromTemplateCopyFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	tpl := filepath.Join(root, "tpl")
	require.NoError(t, os.MkdirAll(filepath.Join(tpl, "tiddlers"), 0755))

	// A read-only parent lets validation pass but fails the first mkdir
	parent := filepath.Join(root, "ws")
	require.NoError(t, os.MkdirAll(parent, 0555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0755) })

	dest := filepath.Join(parent, "wiki")
	err := New(filesystem.NewOS(), tpl, paths.Layout{}).CreateFromTemplate(dest)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCreationFailed, errors.GetErrorCode(err))
	assert.Equal(t, dest, errors.GetErrorDetails(err)["path"])
}

func TestCreateFromTemplateCopiesOnlyTemplate(t *testing.T) {
	fs := memoryTemplate(t)
	require.NoError(t, New(fs, "/tpl", paths.Layout{ContentDir: "tiddlers"}).CreateFromTemplate("/ws/notes"))

	entries, err := fs.ReadDir("/ws/notes")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"a.txt", "b", "tiddlers"}, names)
}

func TestEnsureTemplateCustomContentDir(t *testing.T) {
	fs := memoryTemplate(t)

	err := New(fs, "/tpl", paths.Layout{ContentDir: "content"}).EnsureTemplate()
	require.Error(t, err)
	assert.Equal(t, errors.ErrTemplateMissing, errors.GetErrorCode(err))
	assert.Equal(t, "/tpl/content", errors.GetErrorDetails(err)["expected"])

	require.NoError(t, fs.MkdirAll("/tpl/content", 0755))
	assert.NoError(t, New(fs, "/tpl", paths.Layout{ContentDir: "content"}).EnsureTemplate())
}
