package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem interface required for wikiws operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	Mkdir(name string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Lstat reports on a symlink itself rather than its target.
	// Implementations without symlink support may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}

// Cloner clones a remote repository into an existing, empty folder.
// Errors are opaque to the orchestrator and surfaced as-is.
type Cloner interface {
	Clone(ctx context.Context, remoteURL, destinationPath string, creds Credentials) error
}

// ContentUpdater records tag to sub-wiki associations inside a main wiki's
// content store.
type ContentUpdater interface {
	Update(mainWikiPath string, assoc TagAssociation) error
	Remove(mainWikiPath, subWikiFolderName string) error
}
