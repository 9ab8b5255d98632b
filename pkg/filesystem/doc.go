// Package filesystem provides filesystem implementations for wikiws.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used in production and an afero-backed filesystem
// used for in-memory tests and sandboxed roots.
package filesystem
