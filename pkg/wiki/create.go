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

// SubWikiRequest describes a sub-wiki to create, or with OnlyLink an
// existing folder to attach, under ParentFolder/FolderName.
type SubWikiRequest struct {
	ParentFolder string
	FolderName   string
	MainWikiPath string
	TagName      string
	OnlyLink     bool
}

// Path returns the sub-wiki folder
func (r SubWikiRequest) Path() string {
	return filepath.Join(r.ParentFolder, r.FolderName)
}

// CreateMainWiki copies the template to parentFolder/folderName. The copy
// holds exactly the template's content.
func (o *Orchestrator) CreateMainWiki(ctx context.Context, parentFolder, folderName string) (types.WikiFolder, error) {
	logger := logging.GetLogger("wiki")
	done := logging.LogOperationStart(logger, "CreateMainWiki")
	defer done()

	if err := paths.ValidateFolderName(folderName); err != nil {
		return types.WikiFolder{}, err
	}

	destination := filepath.Join(parentFolder, folderName)
	o.notify(progress.PhaseStart, "Creating wiki %s from template", folderName)

	if err := o.provisioner.CreateFromTemplate(destination); err != nil {
		return types.WikiFolder{}, err
	}

	o.notify(progress.PhaseCompleted, "Template copied to %s", destination)
	logger.Info().Str("path", destination).Msg("Main wiki created")

	return types.WikiFolder{Path: destination, Role: types.RoleMain}, nil
}

// CreateSubWiki creates an empty sub-wiki folder, or reuses an existing one
// in OnlyLink mode, links it into the main wiki and records its tag.
func (o *Orchestrator) CreateSubWiki(ctx context.Context, req SubWikiRequest) (types.WikiFolder, error) {
	logger := logging.GetLogger("wiki")
	done := logging.LogOperationStart(logger, "CreateSubWiki")
	defer done()

	if err := o.checkSubWikiRequest(req.ParentFolder, req.FolderName, req.TagName, req.MainWikiPath); err != nil {
		return types.WikiFolder{}, err
	}

	destination := req.Path()
	o.notify(progress.PhaseStart, "Creating sub-wiki %s", req.FolderName)

	if req.OnlyLink {
		if err := o.validator.EnsureFolderExists(destination); err != nil {
			return types.WikiFolder{}, err
		}
	} else {
		if err := o.validator.EnsureNotExists(destination); err != nil {
			return types.WikiFolder{}, err
		}
		o.notify(progress.PhaseStructure, "Creating folder %s", destination)
		if err := o.fs.Mkdir(destination, 0755); err != nil {
			return types.WikiFolder{}, errors.Wrapf(err, errors.ErrCreationFailed,
				"cannot create folder %s", destination).
				WithDetail("path", destination)
		}
	}

	if err := o.attach(req.MainWikiPath, req.FolderName, destination, req.TagName); err != nil {
		return types.WikiFolder{}, err
	}

	o.notify(progress.PhaseCompleted, "Sub-wiki %s is ready", req.FolderName)
	logger.Info().
		Str("path", destination).
		Str("main", req.MainWikiPath).
		Bool("onlyLink", req.OnlyLink).
		Msg("Sub-wiki attached")

	return types.WikiFolder{Path: destination, Role: types.RoleSub, TagName: req.TagName}, nil
}

// checkSubWikiRequest runs the checks shared by every sub-wiki pipeline,
// before anything is written. The parent folder is checked before the main
// wiki so a mistyped parent is reported as such.
func (o *Orchestrator) checkSubWikiRequest(parentFolder, folderName, tagName, mainWikiPath string) error {
	if err := paths.ValidateFolderName(folderName); err != nil {
		return err
	}
	if err := paths.ValidateTagName(tagName); err != nil {
		return err
	}
	if err := o.validator.EnsureFolderExists(parentFolder); err != nil {
		return err
	}
	return o.validator.EnsureIsWikiFolder(mainWikiPath, true)
}

// attach links subWikiPath into the main wiki, keeps the link folder out of
// version control and records the tag. Only the link itself can fail the
// operation.
func (o *Orchestrator) attach(mainWikiPath, name, subWikiPath, tagName string) error {
	logger := logging.GetLogger("wiki")

	o.notify(progress.PhaseLinking, "Linking %s into %s", name, mainWikiPath)
	if err := o.links.Link(mainWikiPath, name, subWikiPath); err != nil {
		return err
	}

	if !o.skipIgnore {
		if err := o.links.EnsureIgnored(mainWikiPath); err != nil {
			logger.Warn().Err(err).Str("main", mainWikiPath).Msg("Cannot update .gitignore")
			o.notify(progress.PhaseWarning, "Could not add the link folder to %s/.gitignore", mainWikiPath)
		}
	}

	if tagName == "" {
		return nil
	}

	o.notify(progress.PhaseTagging, "Routing tag %s to %s", tagName, name)
	assoc := types.TagAssociation{TagName: tagName, SubWikiFolderName: name}
	if err := o.updater.Update(mainWikiPath, assoc); err != nil {
		logger.Warn().Err(err).
			Str("tag", tagName).
			Str("main", mainWikiPath).
			Msg("Tag association update failed")
		o.notify(progress.PhaseWarning, "Could not record tag %s: %s", tagName, errors.UserMessage(err))
	}
	return nil
}
