// Package wiki provisions wiki folders and wires sub-wikis into main wikis.
//
// An Orchestrator runs each operation as a short sequential pipeline:
// validate, mutate the disk, then report. State is never cached between
// calls; everything is derived from what is on disk, so repeating an
// operation after a partial failure is safe.
//
// A main wiki hosts sub-wikis through links in its reserved link folder:
//
//	o := wiki.New(wiki.Options{TemplatePath: "/usr/share/wikiws/template"})
//	main, err := o.CreateMainWiki(ctx, "/ws", "main")
//	sub, err := o.CreateSubWiki(ctx, wiki.SubWikiRequest{
//		ParentFolder: "/ws",
//		FolderName:   "notes",
//		MainWikiPath: main.Path,
//		TagName:      "Notes",
//	})
//
// Progress is reported through a progress.Sink and never waits on it.
// Concurrent operations on the same paths are not coordinated.
package wiki
