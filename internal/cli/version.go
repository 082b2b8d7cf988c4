package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/hoverpad/chrome-manifest/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			b := opts.build

			if short {
				fmt.Fprintln(out, b.Version)
				return nil
			}

			if asJSON {
				info := map[string]string{
					"version": normalizeVersion(b.Version),
					"commit":  b.Commit,
					"date":    b.Date,
				}
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), b.Version, b.Commit, b.Date)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return cmd
}

// normalizeVersion returns the canonical semver form of version (no "v"
// prefix, missing minor/patch filled in). Non-semver builds such as "dev"
// are returned unchanged.
func normalizeVersion(version string) string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return v.String()
}
