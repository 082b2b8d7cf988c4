// Package cli defines the Cobra command tree for the chrome-manifest CLI.
// The root command runs the manifest transform; subcommands cover build
// metadata. Business logic lives in internal/manifest and internal/config.
package cli
