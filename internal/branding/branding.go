// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults apply when a key is missing.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	ManifestFile string `yaml:"manifest_file"`
	OutputDir    string `yaml:"output_dir"`
	StripKey     string `yaml:"strip_key"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:      "chrome-manifest",
			DisplayName:  "Chrome Manifest",
			Description:  "Strip Firefox-only keys from the extension manifest",
			ManifestFile: "manifest.json",
			OutputDir:    "www",
			StripKey:     "applications",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "chrome-manifest").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ManifestFile returns the manifest file name shared by input and output.
func ManifestFile() string { load(); return defaults.ManifestFile }

// OutputDir returns the build directory, relative to the project root.
func OutputDir() string { load(); return defaults.OutputDir }

// StripKey returns the top-level manifest key removed by default.
func StripKey() string { load(); return defaults.StripKey }
