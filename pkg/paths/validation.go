package paths

import (
	"strings"

	"github.com/arthur-debert/wikiws/pkg/errors"
)

// ValidatePath performs basic validation on a path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateFolderName ensures a wiki folder name is a single path element.
// Folder names double as link names inside the main wiki, so they must:
// - Not be empty
// - Not contain path separators
// - Not be reserved names (. or ..)
// - Not contain control characters
func ValidateFolderName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "folder name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "folder name cannot contain path separators: %s", name).
			WithDetail("name", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidInput, "folder name cannot be '.' or '..'")
	}

	for _, r := range name {
		if r < 32 {
			return errors.New(errors.ErrInvalidInput, "folder name contains control characters")
		}
	}

	return nil
}

// ValidateTagName rejects tags that would break the filter line they are
// written into.
func ValidateTagName(tag string) error {
	if strings.ContainsAny(tag, "[]\n\r") {
		return errors.Newf(errors.ErrInvalidInput, "tag name cannot contain brackets or newlines: %q", tag).
			WithDetail("tag", tag)
	}
	return nil
}
