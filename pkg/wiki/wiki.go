package wiki

import (
	"fmt"

	"github.com/arthur-debert/wikiws/pkg/filesystem"
	"github.com/arthur-debert/wikiws/pkg/gitclone"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/progress"
	"github.com/arthur-debert/wikiws/pkg/symlink"
	"github.com/arthur-debert/wikiws/pkg/tagmap"
	"github.com/arthur-debert/wikiws/pkg/template"
	"github.com/arthur-debert/wikiws/pkg/types"
	"github.com/arthur-debert/wikiws/pkg/validate"
)

// Options configures an Orchestrator. Nil collaborators get defaults.
type Options struct {
	// FS defaults to the OS filesystem
	FS types.FS

	// Layout of main wikis; empty fields take their defaults
	Layout paths.Layout

	// TemplatePath is copied by CreateMainWiki. Defaults to the data dir template
	TemplatePath string

	// Cloner defaults to a go-git cloner without depth or timeout limits
	Cloner types.Cloner

	// Updater defaults to the FileSystemPaths tiddler updater
	Updater types.ContentUpdater

	// Sink defaults to dropping every message
	Sink progress.Sink

	// SkipIgnore leaves the main wiki's .gitignore untouched when linking
	SkipIgnore bool
}

// TagLister is implemented by updaters able to report recorded associations
type TagLister interface {
	List(mainWikiPath string) ([]types.TagAssociation, error)
}

// Orchestrator composes validation, templating, cloning and linking into
// the wiki lifecycle operations.
type Orchestrator struct {
	fs          types.FS
	layout      paths.Layout
	validator   *validate.Validator
	links       *symlink.Manager
	provisioner *template.Provisioner
	cloner      types.Cloner
	updater     types.ContentUpdater
	sink        progress.Sink
	skipIgnore  bool
}

// New creates an Orchestrator
func New(opts Options) *Orchestrator {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	layout := opts.Layout.WithDefaults()

	templatePath := opts.TemplatePath
	if templatePath == "" {
		templatePath = paths.DefaultTemplatePath()
	}

	cloner := opts.Cloner
	if cloner == nil {
		cloner = gitclone.New(0, 0)
	}

	updater := opts.Updater
	if updater == nil {
		updater = tagmap.NewUpdater(fs, layout)
	}

	sink := opts.Sink
	if sink == nil {
		sink = progress.NopSink{}
	}

	return &Orchestrator{
		fs:          fs,
		layout:      layout,
		validator:   validate.New(fs, layout),
		links:       symlink.NewManager(fs, layout),
		provisioner: template.New(fs, templatePath, layout),
		cloner:      cloner,
		updater:     updater,
		sink:        sink,
		skipIgnore:  opts.SkipIgnore,
	}
}

// Layout returns the main wiki layout in use
func (o *Orchestrator) Layout() paths.Layout {
	return o.layout
}

func (o *Orchestrator) notify(phase progress.Phase, format string, args ...interface{}) {
	msg := progress.Message{Message: fmt.Sprintf(format, args...), Phase: phase}
	logger := logging.GetLogger("wiki")
	logger.Debug().
		Str("phase", string(phase)).
		Msg(msg.Message)
	o.sink.Notify(msg)
}
