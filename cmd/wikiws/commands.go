package wikiws

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/wikiws/internal/version"
	"github.com/arthur-debert/wikiws/pkg/config"
	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/filesystem"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/paths"
	"github.com/arthur-debert/wikiws/pkg/types"
	"github.com/arthur-debert/wikiws/pkg/wiki"
)

// dirCompletion completes positional folder arguments
func dirCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// absPath normalizes a user supplied folder argument
func absPath(p string) (string, error) {
	return paths.NormalizePath(p)
}

// credentialOverrides collects the git flags the user actually set
func credentialOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})
	for _, name := range []string{"username", "email", "token"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			overrides["git."+name] = f.Value.String()
		}
	}
	return overrides
}

func addCredentialFlags(cmd *cobra.Command) {
	cmd.Flags().String("username", "", MsgFlagUsername)
	cmd.Flags().String("email", "", MsgFlagEmail)
	cmd.Flags().String("token", "", MsgFlagToken)
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "create <parent> <name>",
		Short:             MsgCreateShort,
		GroupID:           "wiki",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, nil)
			if err != nil {
				return err
			}
			parent, err := absPath(args[0])
			if err != nil {
				return err
			}

			w, err := a.wiki.CreateMainWiki(cmd.Context(), parent, args[1])
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(&types.CommandResult{
				Command: "create",
				Message: fmt.Sprintf(MsgCreated, w.Path),
				Wiki:    &w,
			})
		},
	}
}

func newCreateSubCmd() *cobra.Command {
	var (
		mainWiki string
		tag      string
		onlyLink bool
	)

	cmd := &cobra.Command{
		Use:               "create-sub <parent> <name>",
		Short:             MsgCreateSubShort,
		Long:              MsgCreateSubLong,
		Example:           MsgCreateSubExample,
		GroupID:           "wiki",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, nil)
			if err != nil {
				return err
			}
			parent, err := absPath(args[0])
			if err != nil {
				return err
			}
			mainPath, err := absPath(mainWiki)
			if err != nil {
				return err
			}

			w, err := a.wiki.CreateSubWiki(cmd.Context(), wiki.SubWikiRequest{
				ParentFolder: parent,
				FolderName:   args[1],
				MainWikiPath: mainPath,
				TagName:      tag,
				OnlyLink:     onlyLink,
			})
			if err != nil {
				return err
			}

			msg := MsgSubCreated
			if onlyLink {
				msg = MsgSubLinked
			}
			return a.renderer.RenderResult(&types.CommandResult{
				Command: "create-sub",
				Message: fmt.Sprintf(msg, w.Path),
				Wiki:    &w,
			})
		},
	}

	cmd.Flags().StringVar(&mainWiki, "main", "", MsgFlagMain)
	cmd.Flags().StringVar(&tag, "tag", "", MsgFlagTag)
	cmd.Flags().BoolVar(&onlyLink, "only-link", false, MsgFlagOnlyLink)
	_ = cmd.MarkFlagRequired("main")
	_ = cmd.MarkFlagDirname("main")

	return cmd
}

func newCloneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "clone <parent> <name> <url>",
		Short:             MsgCloneShort,
		Long:              MsgCloneLong,
		GroupID:           "wiki",
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, credentialOverrides(cmd))
			if err != nil {
				return err
			}
			parent, err := absPath(args[0])
			if err != nil {
				return err
			}

			w, err := a.wiki.CloneMainWiki(cmd.Context(), parent, args[1], args[2], a.cfg.Credentials())
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(&types.CommandResult{
				Command: "clone",
				Message: fmt.Sprintf(MsgCloned, w.Path),
				Wiki:    &w,
			})
		},
	}

	addCredentialFlags(cmd)
	return cmd
}

func newCloneSubCmd() *cobra.Command {
	var (
		mainWiki string
		tag      string
	)

	cmd := &cobra.Command{
		Use:               "clone-sub <parent> <name> <url>",
		Short:             MsgCloneSubShort,
		Long:              MsgCloneLong,
		GroupID:           "wiki",
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, credentialOverrides(cmd))
			if err != nil {
				return err
			}
			parent, err := absPath(args[0])
			if err != nil {
				return err
			}
			mainPath, err := absPath(mainWiki)
			if err != nil {
				return err
			}

			w, err := a.wiki.CloneSubWiki(cmd.Context(), wiki.CloneSubWikiRequest{
				ParentFolder: parent,
				FolderName:   args[1],
				MainWikiPath: mainPath,
				RemoteURL:    args[2],
				Credentials:  a.cfg.Credentials(),
				TagName:      tag,
			})
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(&types.CommandResult{
				Command: "clone-sub",
				Message: fmt.Sprintf(MsgSubCloned, w.Path),
				Wiki:    &w,
			})
		},
	}

	cmd.Flags().StringVar(&mainWiki, "main", "", MsgFlagMain)
	cmd.Flags().StringVar(&tag, "tag", "", MsgFlagTag)
	_ = cmd.MarkFlagRequired("main")
	_ = cmd.MarkFlagDirname("main")
	addCredentialFlags(cmd)

	return cmd
}

func newRemoveCmd() *cobra.Command {
	var (
		mainWiki string
		onlyLink bool
	)

	cmd := &cobra.Command{
		Use:               "remove <path>",
		Short:             MsgRemoveShort,
		Long:              MsgRemoveLong,
		GroupID:           "wiki",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, nil)
			if err != nil {
				return err
			}
			target, err := absPath(args[0])
			if err != nil {
				return err
			}
			if onlyLink && mainWiki == "" {
				return errors.New(errors.ErrInvalidInput, "--only-link requires --main")
			}

			req := wiki.RemoveRequest{WikiPath: target, OnlyRemoveLink: onlyLink}
			if mainWiki != "" {
				if req.MainWikiToUnlink, err = absPath(mainWiki); err != nil {
					return err
				}
			}

			if err := a.wiki.RemoveWiki(cmd.Context(), req); err != nil {
				return err
			}

			msg := fmt.Sprintf(MsgRemoved, target)
			if onlyLink {
				msg = fmt.Sprintf(MsgUnlinked, filepath.Base(target), req.MainWikiToUnlink)
			}
			return a.renderer.RenderResult(&types.CommandResult{
				Command: "remove",
				Message: msg,
			})
		},
	}

	cmd.Flags().StringVar(&mainWiki, "main", "", MsgFlagMain)
	cmd.Flags().BoolVar(&onlyLink, "only-link", false, MsgFlagKeep)
	_ = cmd.MarkFlagDirname("main")

	return cmd
}

func newCheckCmd() *cobra.Command {
	var isMain bool

	cmd := &cobra.Command{
		Use:               "check <path>",
		Short:             MsgCheckShort,
		GroupID:           "wiki",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, nil)
			if err != nil {
				return err
			}
			target, err := absPath(args[0])
			if err != nil {
				return err
			}

			if err := a.wiki.EnsureWikiExist(cmd.Context(), target, isMain); err != nil {
				return err
			}

			w := types.WikiFolder{Path: target, Role: types.RoleSub}
			msg := MsgCheckOK
			if isMain {
				w.Role = types.RoleMain
				msg = MsgCheckMainOK
			}
			return a.renderer.RenderResult(&types.CommandResult{
				Command: "check",
				Message: fmt.Sprintf(msg, target),
				Wiki:    &w,
			})
		},
	}

	cmd.Flags().BoolVar(&isMain, "main", false, MsgFlagIsMain)
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "list <main>",
		Short:             MsgListShort,
		GroupID:           "wiki",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: dirCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, nil)
			if err != nil {
				return err
			}
			mainPath, err := absPath(args[0])
			if err != nil {
				return err
			}

			entries, err := a.wiki.ListSubWikis(cmd.Context(), mainPath)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(&types.SubWikiList{
				MainWikiPath: mainPath,
				SubWikis:     entries,
			})
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.config")

			target, _ := cmd.Root().PersistentFlags().GetString("config")
			if target == "" {
				target = paths.ConfigFilePath()
			}
			target = paths.ExpandHome(target)

			fs := filesystem.NewOS()
			if _, err := fs.Stat(target); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrConfigExists, target).
					WithDetail("path", target)
			}

			// The file is generated from defaults so that a broken existing
			// file does not leak into its replacement
			cfg, err := config.Default()
			if err != nil {
				return err
			}
			content, err := config.GenerateCommented(cfg)
			if err != nil {
				return err
			}

			if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrCreationFailed, "cannot create %s", filepath.Dir(target))
			}
			if err := fs.WriteFile(target, content, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrCreationFailed, "cannot write %s", target).
					WithDetail("path", target)
			}
			logger.Info().Str("path", target).Msg("Config file written")

			a, err := loadApp(cmd, nil)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(&types.CommandResult{
				Command: "config init",
				Message: fmt.Sprintf(MsgConfigWritten, target),
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := filesystem.NewOS()
			if err := fs.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrCreationFailed, "cannot create %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "WIKIWS",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrCreationFailed, "failed to generate man pages")
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	_ = cmd.MarkFlagDirname("dir")
	return cmd
}
