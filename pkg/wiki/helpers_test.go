package wiki

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/arthur-debert/wikiws/pkg/filesystem"
	"github.com/arthur-debert/wikiws/pkg/progress"
	"github.com/arthur-debert/wikiws/pkg/testutil"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// fakeCloner writes a tiny wiki into the destination, or fails with err
type fakeCloner struct {
	err   error
	calls []cloneCall
}

type cloneCall struct {
	URL         string
	Destination string
	Creds       types.Credentials
}

func (f *fakeCloner) Clone(ctx context.Context, remoteURL, destinationPath string, creds types.Credentials) error {
	f.calls = append(f.calls, cloneCall{URL: remoteURL, Destination: destinationPath, Creds: creds})
	if f.err != nil {
		// a real cloner may have written something before failing
		_ = os.WriteFile(filepath.Join(destinationPath, "partial"), []byte("x"), 0644)
		return f.err
	}
	if err := os.MkdirAll(filepath.Join(destinationPath, "tiddlers"), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(destinationPath, "tiddlers", "Remote.tid"), []byte("title: Remote\n"), 0644)
}

// fakeUpdater records calls and can be told to fail
type fakeUpdater struct {
	mu       sync.Mutex
	err      error
	updates  []types.TagAssociation
	removals []string
}

func (f *fakeUpdater) Update(mainWikiPath string, assoc types.TagAssociation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, assoc)
	return f.err
}

func (f *fakeUpdater) Remove(mainWikiPath, subWikiFolderName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removals = append(f.removals, subWikiFolderName)
	return f.err
}

// brokenLstatFS fails Lstat for one path with a permission error
type brokenLstatFS struct {
	types.FS
	path string
}

func (b brokenLstatFS) Lstat(name string) (fs.FileInfo, error) {
	if name == b.path {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: fs.ErrPermission}
	}
	return b.FS.Lstat(name)
}

type env struct {
	root     string
	ws       string
	main     string
	template string
	cloner   *fakeCloner
	updater  *fakeUpdater
	rec      *progress.Recorder
	o        *Orchestrator
}

// newEnv lays out <root>/tpl (a.txt, b/c.txt, tiddlers/) and a main wiki at
// <root>/ws/main
func newEnv(t *testing.T) *env {
	t.Helper()
	root := t.TempDir()
	e := &env{
		root:     root,
		ws:       filepath.Join(root, "ws"),
		main:     filepath.Join(root, "ws", "main"),
		template: filepath.Join(root, "tpl"),
		cloner:   &fakeCloner{},
		updater:  &fakeUpdater{},
		rec:      &progress.Recorder{},
	}

	osfs := filesystem.NewOS()
	testutil.CreateFileTree(t, osfs, e.template, testutil.FileTree{
		"a.txt":    "alpha",
		"b":        testutil.FileTree{"c.txt": "gamma"},
		"tiddlers": testutil.FileTree{},
	})
	testutil.CreateFileTree(t, osfs, e.main, testutil.FileTree{"tiddlers": testutil.FileTree{}})

	e.o = e.orchestrator(osfs)
	return e
}

func (e *env) orchestrator(fsys types.FS) *Orchestrator {
	return New(Options{
		FS:           fsys,
		TemplatePath: e.template,
		Cloner:       e.cloner,
		Updater:      e.updater,
		Sink:         e.rec,
	})
}

func (e *env) linkPath(name string) string {
	return filepath.Join(e.main, "tiddlers", "subwiki", name)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// chdir moves the test into dir and restores the working directory after
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
