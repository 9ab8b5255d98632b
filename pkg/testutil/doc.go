// Package testutil provides fixtures for testing wikiws components.
//
// Key components:
//   - FileTree: declarative directory layout written through a types.FS
//   - TestEnvironment: isolated config, data and state directories plus a
//     workspace folder and a wiki template
//   - GitRepo: a local repository with one commit, usable as a clone source
//
// Usage guidelines:
//   - Use EnvMemoryOnly when the code under test takes a types.FS and needs
//     no symlinks
//   - Use EnvIsolated for symlinks, git and anything that goes through the CLI
//   - All test data should be defined inline, not in external files
package testutil
