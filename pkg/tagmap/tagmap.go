// Package tagmap records which sub-wiki stores tiddlers of a given tag.
//
// The associations live in a single tiddler inside the main wiki (by default
// plugins/linonetwo/sub-wiki/FileSystemPaths.tid). It holds the usual .tid
// header, a blank line, then one TiddlyWiki filter per association:
//
//	[!is[system]tag[Tag]addprefix[/]addprefix[folder]addprefix[/]addprefix[subwiki]]
//
// The filter prefixes a tagged tiddler's title with <linkFolder>/<folder>/,
// so TiddlyWiki saves it through the sub-wiki link.
package tagmap

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// DefaultHeader starts a freshly created associations tiddler
const DefaultHeader = "title: $:/config/FileSystemPaths\ntype: text/vnd.tiddlywiki"

var filterLine = regexp.MustCompile(
	`^\[!is\[system\]tag\[([^\]]*)\]addprefix\[/\]addprefix\[(.*)\]addprefix\[/\]addprefix\[([^\]]*)\]\]$`)

// Updater rewrites the associations tiddler. It implements
// types.ContentUpdater.
type Updater struct {
	fs     types.FS
	layout paths.Layout
}

// NewUpdater creates an Updater. Empty layout fields take their defaults.
func NewUpdater(fs types.FS, layout paths.Layout) *Updater {
	return &Updater{fs: fs, layout: layout.WithDefaults()}
}

// FilterFor returns the filter line recording assoc.
func (u *Updater) FilterFor(assoc types.TagAssociation) string {
	return "[!is[system]tag[" + assoc.TagName + "]addprefix[/]addprefix[" +
		assoc.SubWikiFolderName + "]addprefix[/]addprefix[" + u.layout.LinkFolder + "]]"
}

// Update records assoc. An identical line is left alone, a line for the same
// tag is replaced, anything else is appended. An empty tag is a no-op.
func (u *Updater) Update(mainWikiPath string, assoc types.TagAssociation) error {
	if assoc.TagName == "" {
		return nil
	}
	if err := paths.ValidateTagName(assoc.TagName); err != nil {
		return err
	}
	if err := paths.ValidateFolderName(assoc.SubWikiFolderName); err != nil {
		return err
	}

	doc, err := u.read(mainWikiPath)
	if err != nil {
		return err
	}

	want := u.FilterFor(assoc)
	replaced := false
	changed := false
	kept := make([]string, 0, len(doc.filters)+1)
	for _, line := range doc.filters {
		tag, _, ok := parseFilter(line)
		if !ok || tag != assoc.TagName {
			kept = append(kept, line)
			continue
		}
		if replaced {
			// duplicate entry for the tag
			changed = true
			continue
		}
		replaced = true
		if line != want {
			changed = true
		}
		kept = append(kept, want)
	}
	if !replaced {
		kept = append(kept, want)
		changed = true
	}
	doc.filters = kept

	if !changed {
		return nil
	}

	logger := logging.GetLogger("tagmap")
	logger.Info().
		Str("tag", assoc.TagName).
		Str("folder", assoc.SubWikiFolderName).
		Msg("Recorded tag association")
	return u.write(mainWikiPath, doc)
}

// Remove drops every association pointing at subWikiFolderName. A missing
// tiddler is not an error.
func (u *Updater) Remove(mainWikiPath, subWikiFolderName string) error {
	target := u.layout.TagMapPath(mainWikiPath)
	if _, err := u.fs.Stat(target); os.IsNotExist(err) {
		return nil
	}

	doc, err := u.read(mainWikiPath)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(doc.filters))
	for _, line := range doc.filters {
		if _, folder, ok := parseFilter(line); ok && folder == subWikiFolderName {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) == len(doc.filters) {
		return nil
	}
	doc.filters = kept

	logger := logging.GetLogger("tagmap")
	logger.Info().
		Str("folder", subWikiFolderName).
		Msg("Removed tag association")
	return u.write(mainWikiPath, doc)
}

// List returns the associations recorded in mainWikiPath, in file order.
func (u *Updater) List(mainWikiPath string) ([]types.TagAssociation, error) {
	target := u.layout.TagMapPath(mainWikiPath)
	if _, err := u.fs.Stat(target); os.IsNotExist(err) {
		return []types.TagAssociation{}, nil
	}

	doc, err := u.read(mainWikiPath)
	if err != nil {
		return nil, err
	}

	assocs := make([]types.TagAssociation, 0, len(doc.filters))
	for _, line := range doc.filters {
		if tag, folder, ok := parseFilter(line); ok {
			assocs = append(assocs, types.TagAssociation{TagName: tag, SubWikiFolderName: folder})
		}
	}
	return assocs, nil
}

// document is the associations tiddler split at its first blank line
type document struct {
	header  string
	filters []string
}

func (u *Updater) read(mainWikiPath string) (*document, error) {
	target := u.layout.TagMapPath(mainWikiPath)
	data, err := u.fs.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return &document{header: DefaultHeader}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrTagUpdateFailed, "cannot read %s", target).
			WithDetail("path", target)
	}
	return parseDocument(string(data)), nil
}

func (u *Updater) write(mainWikiPath string, doc *document) error {
	target := u.layout.TagMapPath(mainWikiPath)
	if err := u.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrTagUpdateFailed, "cannot create folder for %s", target).
			WithDetail("path", target)
	}
	if err := u.fs.WriteFile(target, []byte(doc.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrTagUpdateFailed, "cannot write %s", target).
			WithDetail("path", target)
	}
	return nil
}

func parseDocument(content string) *document {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	header, body, found := strings.Cut(content, "\n\n")
	if !found {
		// header only, or an empty file
		header = strings.TrimRight(content, "\n")
		body = ""
	}
	if strings.TrimSpace(header) == "" {
		header = DefaultHeader
	}

	doc := &document{header: header}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			doc.filters = append(doc.filters, line)
		}
	}
	return doc
}

func (d *document) String() string {
	var b strings.Builder
	b.WriteString(d.header)
	b.WriteString("\n\n")
	for _, line := range d.filters {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func parseFilter(line string) (tag, folder string, ok bool) {
	m := filterLine.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
