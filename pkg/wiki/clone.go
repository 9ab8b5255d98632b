package wiki

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/progress"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// CloneSubWikiRequest describes a remote sub-wiki to clone and attach
type CloneSubWikiRequest struct {
	ParentFolder string
	FolderName   string
	MainWikiPath string
	RemoteURL    string
	Credentials  types.Credentials
	TagName      string
}

// CloneMainWiki clones remoteURL into parentFolder/folderName. Errors from
// the cloner are returned as they are.
func (o *Orchestrator) CloneMainWiki(ctx context.Context, parentFolder, folderName, remoteURL string, creds types.Credentials) (types.WikiFolder, error) {
	logger := logging.GetLogger("wiki")
	done := logging.LogOperationStart(logger, "CloneMainWiki")
	defer done()

	if err := paths.ValidateFolderName(folderName); err != nil {
		return types.WikiFolder{}, err
	}

	o.notify(progress.PhaseStart, "Cloning wiki %s", folderName)
	destination, err := o.clone(ctx, parentFolder, folderName, remoteURL, creds)
	if err != nil {
		return types.WikiFolder{}, err
	}

	o.notify(progress.PhaseCompleted, "Wiki cloned to %s", destination)
	return types.WikiFolder{Path: destination, Role: types.RoleMain}, nil
}

// CloneSubWiki clones a remote sub-wiki, links it into the main wiki and
// records its tag.
func (o *Orchestrator) CloneSubWiki(ctx context.Context, req CloneSubWikiRequest) (types.WikiFolder, error) {
	logger := logging.GetLogger("wiki")
	done := logging.LogOperationStart(logger, "CloneSubWiki")
	defer done()

	if err := o.checkSubWikiRequest(req.ParentFolder, req.FolderName, req.TagName, req.MainWikiPath); err != nil {
		return types.WikiFolder{}, err
	}

	o.notify(progress.PhaseStart, "Cloning sub-wiki %s", req.FolderName)
	destination, err := o.clone(ctx, req.ParentFolder, req.FolderName, req.RemoteURL, req.Credentials)
	if err != nil {
		return types.WikiFolder{}, err
	}

	if err := o.attach(req.MainWikiPath, req.FolderName, destination, req.TagName); err != nil {
		return types.WikiFolder{}, err
	}

	o.notify(progress.PhaseCompleted, "Sub-wiki %s is ready", req.FolderName)
	return types.WikiFolder{Path: destination, Role: types.RoleSub, TagName: req.TagName}, nil
}

// clone validates the destination, creates it empty and hands it to the
// cloner. A failed clone removes the folder it created.
func (o *Orchestrator) clone(ctx context.Context, parentFolder, folderName, remoteURL string, creds types.Credentials) (string, error) {
	logger := logging.GetLogger("wiki")

	if remoteURL == "" {
		return "", errors.New(errors.ErrInvalidInput, "remote URL cannot be empty")
	}

	destination := filepath.Join(parentFolder, folderName)
	if err := o.validator.EnsureFolderExists(parentFolder); err != nil {
		return "", err
	}
	if err := o.validator.EnsureNotExists(destination); err != nil {
		return "", err
	}

	if err := o.fs.Mkdir(destination, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrCreationFailed, "cannot create folder %s", destination).
			WithDetail("path", destination)
	}

	o.notify(progress.PhaseCloning, "Downloading into %s", destination)
	if err := o.cloner.Clone(ctx, remoteURL, destination, creds); err != nil {
		if rmErr := o.fs.RemoveAll(destination); rmErr != nil {
			logger.Warn().Err(rmErr).Str("path", destination).Msg("Cannot clean up after failed clone")
		}
		return "", err
	}
	return destination, nil
}
