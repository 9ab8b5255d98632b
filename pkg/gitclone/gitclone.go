// Package gitclone clones wiki repositories with go-git, so no git binary
// is needed on the host.
package gitclone

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/types"
)

// defaultUsername is sent with a token when no username is configured.
// Hosting services ignore the username for token auth but require one.
const defaultUsername = "git"

// Cloner implements types.Cloner on top of go-git.
type Cloner struct {
	// Depth limits history; zero clones everything
	Depth int

	// Timeout bounds a single clone; zero means only ctx applies
	Timeout time.Duration

	// Progress receives the remote's sideband output, may be nil
	Progress io.Writer
}

// New returns a Cloner with the given depth and timeout.
func New(depth int, timeout time.Duration) *Cloner {
	return &Cloner{Depth: depth, Timeout: timeout}
}

// Clone clones remoteURL into destinationPath, which may exist but must be
// empty. On failure go-git clears what it wrote.
func (c *Cloner) Clone(ctx context.Context, remoteURL, destinationPath string, creds types.Credentials) error {
	logger := logging.GetLogger("gitclone")
	displayURL := RedactURL(remoteURL)

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	opts := &git.CloneOptions{
		URL:      remoteURL,
		Auth:     authFor(creds),
		Depth:    c.Depth,
		Progress: c.Progress,
	}

	logger.Info().
		Str("url", displayURL).
		Str("destination", destinationPath).
		Bool("token", creds.HasToken()).
		Int("depth", c.Depth).
		Msg("Cloning repository")

	repo, err := git.PlainCloneContext(ctx, destinationPath, false, opts)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCloneFailed, "failed to clone %s", displayURL).
			WithDetail("url", displayURL).
			WithDetail("path", destinationPath)
	}

	if err := setIdentity(repo, creds); err != nil {
		logger.Warn().Err(err).Str("path", destinationPath).Msg("Cannot record author identity")
	}

	logger.Info().Str("destination", destinationPath).Msg("Clone finished")
	return nil
}

func authFor(creds types.Credentials) transport.AuthMethod {
	if !creds.HasToken() {
		return nil
	}
	username := creds.Username
	if username == "" {
		username = defaultUsername
	}
	return &http.BasicAuth{Username: username, Password: creds.Token}
}

// setIdentity writes user.name and user.email to the clone's local config
// so later commits in the wiki carry the right author. The token is never
// written.
func setIdentity(repo *git.Repository, creds types.Credentials) error {
	if creds.Username == "" && creds.Email == "" {
		return nil
	}
	cfg, err := repo.Config()
	if err != nil {
		return err
	}
	if creds.Username != "" {
		cfg.User.Name = creds.Username
	}
	if creds.Email != "" {
		cfg.User.Email = creds.Email
	}
	return repo.SetConfig(cfg)
}

// RedactURL drops any password embedded in a remote URL.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
