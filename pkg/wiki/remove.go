package wiki

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/progress"
)

// RemoveRequest describes what RemoveWiki tears down
type RemoveRequest struct {
	// WikiPath is the wiki folder; its base name is the link name
	WikiPath string

	// MainWikiToUnlink, when set, loses its link and tag association
	MainWikiToUnlink string

	// OnlyRemoveLink keeps WikiPath on disk
	OnlyRemoveLink bool
}

// RemoveWiki unlinks and deletes a wiki. The unlink and the delete are
// attempted independently; their failures are joined.
func (o *Orchestrator) RemoveWiki(ctx context.Context, req RemoveRequest) error {
	logger := logging.GetLogger("wiki")
	done := logging.LogOperationStart(logger, "RemoveWiki")
	defer done()

	wikiPath := filepath.Clean(req.WikiPath)
	if err := paths.ValidatePath(req.WikiPath); err != nil {
		return err
	}
	if filepath.Dir(wikiPath) == wikiPath {
		return errors.Newf(errors.ErrInvalidInput, "refusing to remove %s", wikiPath).
			WithDetail("path", wikiPath)
	}

	name := filepath.Base(wikiPath)
	o.notify(progress.PhaseStart, "Removing wiki %s", name)

	var unlinkErr, removeErr error
	if req.MainWikiToUnlink != "" {
		o.notify(progress.PhaseLinking, "Unlinking %s from %s", name, req.MainWikiToUnlink)
		unlinkErr = o.links.Unlink(req.MainWikiToUnlink, name)
		if unlinkErr != nil {
			logger.Error().Err(unlinkErr).Str("main", req.MainWikiToUnlink).Msg("Unlink failed")
		}

		if err := o.updater.Remove(req.MainWikiToUnlink, name); err != nil {
			logger.Warn().Err(err).Str("main", req.MainWikiToUnlink).Msg("Tag association removal failed")
			o.notify(progress.PhaseWarning, "Could not remove tag routing for %s: %s", name, errors.UserMessage(err))
		}
	}

	if !req.OnlyRemoveLink {
		o.notify(progress.PhaseRemoving, "Deleting %s", wikiPath)
		if err := o.fs.RemoveAll(wikiPath); err != nil {
			removeErr = errors.Wrapf(err, errors.ErrRemovalFailed, "cannot delete %s", wikiPath).
				WithDetail("path", wikiPath)
			logger.Error().Err(err).Str("path", wikiPath).Msg("Delete failed")
		}
	}

	if err := errors.Join(unlinkErr, removeErr); err != nil {
		return err
	}

	o.notify(progress.PhaseCompleted, "Wiki %s removed", name)
	return nil
}
