package wiki

import (
	"context"

	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// EnsureWikiExist fails unless wikiPath is a folder and, when
// shouldBeMainWiki is set, holds the reserved content folder.
func (o *Orchestrator) EnsureWikiExist(ctx context.Context, wikiPath string, shouldBeMainWiki bool) error {
	return o.validator.EnsureIsWikiFolder(wikiPath, shouldBeMainWiki)
}

// ListSubWikis reports the links of a main wiki along with the tag routed
// to each, when the updater can tell.
func (o *Orchestrator) ListSubWikis(ctx context.Context, mainWikiPath string) ([]types.SymlinkEntry, error) {
	if err := o.validator.EnsureIsWikiFolder(mainWikiPath, true); err != nil {
		return nil, err
	}

	entries, err := o.links.List(mainWikiPath)
	if err != nil {
		return nil, err
	}

	lister, ok := o.updater.(TagLister)
	if !ok {
		return entries, nil
	}
	assocs, err := lister.List(mainWikiPath)
	if err != nil {
		logger := logging.GetLogger("wiki")
		logger.Warn().Err(err).Str("main", mainWikiPath).Msg("Cannot read tag associations")
		return entries, nil
	}

	tags := make(map[string]string, len(assocs))
	for _, a := range assocs {
		if _, seen := tags[a.SubWikiFolderName]; !seen {
			tags[a.SubWikiFolderName] = a.TagName
		}
	}
	for i := range entries {
		entries[i].TagName = tags[entries[i].Name]
	}
	return entries, nil
}
