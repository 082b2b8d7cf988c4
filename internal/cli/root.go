package cli

import (
	"fmt"

	"github.com/hoverpad/chrome-manifest/internal/branding"
	"github.com/hoverpad/chrome-manifest/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuildInfo carries values injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootOptions struct {
	build      BuildInfo
	configPath string
	verbose    bool
	logger     *zap.Logger
	newLogger  func(verbose bool) (*zap.Logger, error)
}

// NewRootCmd builds the command tree.
func NewRootCmd(build BuildInfo) *cobra.Command {
	cmd, _ := newRootCmd(build)
	return cmd
}

func newRootCmd(build BuildInfo) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{build: build, logger: zap.NewNop(), newLogger: buildLogger}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` copies the extension manifest into the build directory,
dropping the Firefox-only "` + branding.StripKey() + `" block that Chrome rejects.

With no flags it reads <root>/manifest.json and writes <root>/www/manifest.json,
where <root> is the parent of the directory holding this binary.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML settings file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")

	f := cmd.Flags()
	f.String(config.KeyRoot, "", "Project root, relative to the working directory (default: parent of the binary's directory; a relative root in --config is relative to that file)")
	f.String(config.KeyInput, "", "Input manifest, relative to root (default \"manifest.json\")")
	f.String(config.KeyOutput, "", "Output manifest, relative to root (default \"www/manifest.json\")")
	f.String(config.KeyKey, branding.StripKey(), "Top-level key to remove")
	f.Int(config.KeyIndent, 0, fmt.Sprintf("Indent output by this many spaces, 0 to %d (0 = compact)", config.MaxIndent))
	f.Bool(config.KeyASCII, false, "Escape non-ASCII characters as \\uXXXX")

	cmd.AddCommand(newVersionCmd(opts))
	return cmd, opts
}

func (o *rootOptions) initLogger() error {
	logger, err := o.newLogger(o.verbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	o.logger = logger
	return nil
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// run executes cmd and flushes the logger whether or not the command failed.
func run(cmd *cobra.Command, opts *rootOptions) error {
	err := cmd.Execute()
	_ = opts.logger.Sync()
	return err
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	cmd, opts := newRootCmd(BuildInfo{Version: version, Commit: commit, Date: date})
	if err := run(cmd, opts); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
