package wikiws

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Provision TiddlyWiki workspaces: main wikis, sub-wikis and their links"
	MsgCreateShort     = "Create a main wiki from the template"
	MsgCreateSubShort  = "Create a sub-wiki and link it into a main wiki"
	MsgCloneShort      = "Clone a main wiki from a git remote"
	MsgCloneSubShort   = "Clone a sub-wiki and link it into a main wiki"
	MsgRemoveShort     = "Remove a wiki and/or its link in a main wiki"
	MsgCheckShort      = "Check that a path holds a wiki"
	MsgListShort       = "List the sub-wikis linked into a main wiki"
	MsgConfigShort     = "Manage the wikiws configuration file"
	MsgConfigInitShort = "Write a commented default config file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Result messages
	MsgCreated       = "Created main wiki %s"
	MsgSubCreated    = "Created sub-wiki %s"
	MsgSubLinked     = "Linked sub-wiki %s"
	MsgCloned        = "Cloned main wiki %s"
	MsgSubCloned     = "Cloned sub-wiki %s"
	MsgRemoved       = "Removed %s"
	MsgUnlinked      = "Unlinked %s from %s"
	MsgCheckOK       = "%s is a wiki"
	MsgCheckMainOK   = "%s is a main wiki"
	MsgConfigWritten = "Wrote config to %s"
	MsgManWritten    = "Wrote man pages to %s"
	MsgVersionFormat = "wikiws version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrConfigExists = "config file %s already exists, use --force to overwrite"
	MsgErrNoCommand    = "no command specified"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/wikiws/config.toml)"
	MsgFlagFormat   = "Output format: auto, term, text, json or yaml"
	MsgFlagMain     = "Main wiki the sub-wiki is linked into"
	MsgFlagTag      = "Tag whose tiddlers are saved into the sub-wiki"
	MsgFlagOnlyLink = "Link an existing folder instead of creating one"
	MsgFlagKeep     = "Only remove the link, keep the wiki folder"
	MsgFlagIsMain   = "Also require the main wiki structure"
	MsgFlagUsername = "Git username for the clone and its commit identity"
	MsgFlagEmail    = "Git email for the clone's commit identity"
	MsgFlagToken    = "Access token for HTTPS remotes (prefer WIKIWS_GIT_TOKEN)"
	MsgFlagForce    = "Overwrite an existing config file"
	MsgFlagManDir   = "Directory the man pages are written to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/create-sub-long.txt
	msgCreateSubLongRaw string
	MsgCreateSubLong    = strings.TrimSpace(msgCreateSubLongRaw)

	//go:embed msgs/create-sub-example.txt
	msgCreateSubExampleRaw string
	MsgCreateSubExample    = strings.TrimRight(msgCreateSubExampleRaw, "\n")

	//go:embed msgs/clone-long.txt
	msgCloneLongRaw string
	MsgCloneLong    = strings.TrimSpace(msgCloneLongRaw)

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
