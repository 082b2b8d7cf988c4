package cli

import (
	"github.com/hoverpad/chrome-manifest/internal/config"
	"github.com/hoverpad/chrome-manifest/internal/manifest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runTransform(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := config.CheckRequires(cfg.Requires, opts.build.Version); err != nil {
		return err
	}

	paths, err := manifest.ResolvePaths(cfg.Root, cfg.Input, cfg.Output)
	if err != nil {
		return err
	}
	opts.logger.Debug("resolved manifest paths",
		zap.String("root", paths.Root),
		zap.String("input", paths.Input),
		zap.String("output", paths.Output),
		zap.String("key", cfg.Key))

	t := manifest.NewTransformer(paths, manifest.Options{
		Key:      cfg.Key,
		Format:   manifest.EncodeOptions{Indent: cfg.Indent, ASCII: cfg.ASCII},
		Progress: cmd.OutOrStdout(),
		Logger:   opts.logger,
	})
	return t.Run()
}
