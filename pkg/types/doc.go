// Package types defines the core types and interfaces used throughout wikiws.
// This includes the FS seam every component mutates disk through, the
// collaborator interfaces (Cloner, ContentUpdater) the orchestrator depends
// on, and data structures like WikiFolder, SymlinkEntry and TagAssociation.
package types
