package wikiws

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/wikiws/internal/version"
	"github.com/arthur-debert/wikiws/pkg/config"
	"github.com/arthur-debert/wikiws/pkg/errors"
	"github.com/arthur-debert/wikiws/pkg/gitclone"
	"github.com/arthur-debert/wikiws/pkg/logging"
	"github.com/arthur-debert/wikiws/pkg/ui"
	"github.com/arthur-debert/wikiws/pkg/wiki"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		format     string
	)

	rootCmd := &cobra.Command{
		Use:     "wikiws",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Short(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but signal incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&format, "format", config.FormatAuto, MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatAuto, config.FormatTerm, config.FormatText, config.FormatJSON, config.FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "wiki",
		Title: "WIKI COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newCreateSubCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newCloneSubCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// app holds what a wiki command needs once flags and config are resolved
type app struct {
	cfg      *config.Config
	format   ui.Format
	renderer ui.Renderer
	wiki     *wiki.Orchestrator
}

// loadApp merges config with the global flags and any command-level
// overrides, then builds the renderer and orchestrator on the command's
// stdout.
func loadApp(cmd *cobra.Command, overrides map[string]interface{}) (*app, error) {
	if overrides == nil {
		overrides = make(map[string]interface{})
	}
	flags := cmd.Root().PersistentFlags()
	configFile, _ := flags.GetString("config")
	if f := flags.Lookup("format"); f != nil && f.Changed {
		overrides["output.format"] = f.Value.String()
	}

	cfg, err := config.Load(config.LoadOptions{
		File:      configFile,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	format, err := resolveFormat(cfg, out)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(format, out)
	if err != nil {
		return nil, err
	}

	cloner := gitclone.New(cfg.Git.Depth, cfg.Git.CloneTimeout)
	if format == ui.FormatTerminal {
		cloner.Progress = cmd.ErrOrStderr()
	}

	orchestrator := wiki.New(wiki.Options{
		Layout:       cfg.Layout(),
		TemplatePath: cfg.Wiki.TemplatePath,
		Cloner:       cloner,
		Sink:         ui.NewProgressSink(format, out),
		SkipIgnore:   !cfg.Wiki.IgnoreLinks,
	})

	logger := logging.WithFields(map[string]interface{}{
		"command":  cmd.Name(),
		"format":   format.String(),
		"template": cfg.Wiki.TemplatePath,
	})
	logger.Debug().Msg("Command environment ready")

	return &app{
		cfg:      cfg,
		format:   format,
		renderer: renderer,
		wiki:     orchestrator,
	}, nil
}

// resolveFormat turns the configured format into a concrete one for out
func resolveFormat(cfg *config.Config, out io.Writer) (ui.Format, error) {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return ui.FormatAuto, err
	}
	if format == ui.FormatAuto && cfg.Output.NoColor {
		return ui.FormatText, nil
	}
	return ui.Resolve(format, out), nil
}

// RenderError writes err to w in the format requested on the command line.
// It does not read the config file, which may be what failed.
func RenderError(rootCmd *cobra.Command, w io.Writer, err error) {
	formatName, _ := rootCmd.PersistentFlags().GetString("format")
	format, perr := ui.ParseFormat(formatName)
	if perr != nil {
		format = ui.FormatAuto
	}
	renderer, rerr := ui.NewRenderer(format, w)
	if rerr != nil {
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	_ = renderer.RenderError(err)
}
