package types

import "path/filepath"

// Role tells main wikis from sub-wikis.
type Role string

const (
	RoleMain Role = "main"
	RoleSub  Role = "sub"
)

// WikiFolder is a directory on disk holding one wiki instance.
type WikiFolder struct {
	Path    string `json:"path" yaml:"path"`
	Role    Role   `json:"role" yaml:"role"`
	TagName string `json:"tagName,omitempty" yaml:"tagName,omitempty"`
}

// Name returns the folder's base name, which doubles as the sub-wiki link name.
func (w WikiFolder) Name() string {
	return filepath.Base(w.Path)
}

// SymlinkEntry is a link inside a main wiki's reserved link folder.
type SymlinkEntry struct {
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path" yaml:"path"`
	Target   string `json:"target" yaml:"target"`
	Dangling bool   `json:"dangling" yaml:"dangling"`
	TagName  string `json:"tagName,omitempty" yaml:"tagName,omitempty"`
}

// TagAssociation maps a tag to the sub-wiki folder its tiddlers live in.
type TagAssociation struct {
	TagName           string `json:"tagName" yaml:"tagName"`
	SubWikiFolderName string `json:"subWikiFolderName" yaml:"subWikiFolderName"`
}

// Credentials are passed through to the Cloner and never persisted.
type Credentials struct {
	Username string
	Email    string
	Token    string
}

// HasToken reports whether an access token is set.
func (c Credentials) HasToken() bool {
	return c.Token != ""
}

// String never prints the token.
func (c Credentials) String() string {
	if c.HasToken() {
		return c.Username + ":***"
	}
	return c.Username
}
