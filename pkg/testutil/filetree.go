package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wikiws/pkg/types"
)

// FileTree represents a directory structure for testing. A string value is a
// file's content, a nested FileTree is a directory.
type FileTree map[string]interface{}

// TemplateTree is a minimal wiki template
func TemplateTree() FileTree {
	return FileTree{
		"tiddlywiki.info": "{\"plugins\": []}\n",
		"tiddlers": FileTree{
			"$__SiteTitle.tid": "title: $:/SiteTitle\n\nMy Wiki\n",
		},
	}
}

// CreateFileTree recursively creates tree under basePath
func CreateFileTree(t *testing.T, fs types.FS, basePath string, tree FileTree) {
	t.Helper()

	if err := fs.MkdirAll(basePath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", basePath, err)
	}

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			CreateFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
