package testutil

import (
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/arthur-debert/wikiws/pkg/filesystem"
)

// WelcomeTiddler is what DefaultRepoTree puts in tiddlers/Welcome.tid
const WelcomeTiddler = "title: Welcome\n\nhi\n"

// DefaultRepoTree is a one-tiddler wiki
func DefaultRepoTree() FileTree {
	return FileTree{
		"tiddlers": FileTree{
			"Welcome.tid": WelcomeTiddler,
		},
	}
}

// GitRepo creates a repository on disk holding tree in a single commit and
// returns its path, which go-git accepts as a clone URL
func GitRepo(t *testing.T, tree FileTree) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "source")

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to init repository: %v", err)
	}
	CreateFileTree(t, filesystem.NewOS(), dir, tree)

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to open worktree: %v", err)
	}
	for _, file := range treeFiles("", tree) {
		if _, err := wt.Add(file); err != nil {
			t.Fatalf("Failed to add %s: %v", file, err)
		}
	}
	_, err = wt.Commit("initial wiki", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	return dir
}

// treeFiles lists the slash separated file paths in tree, sorted
func treeFiles(prefix string, tree FileTree) []string {
	var files []string
	for name, content := range tree {
		p := name
		if prefix != "" {
			p = prefix + "/" + name
		}
		switch v := content.(type) {
		case string:
			files = append(files, p)
		case FileTree:
			files = append(files, treeFiles(p, v)...)
		}
	}
	sort.Strings(files)
	return files
}
