package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/hoverpad/chrome-manifest/internal/branding"
	"github.com/hoverpad/chrome-manifest/internal/platform"
)

// Paths holds the resolved, absolute locations the transformer works on.
type Paths struct {
	Root   string
	Input  string
	Output string
}

// DefaultRoot returns the project root for a binary installed in a
// subdirectory of the project (e.g. <root>/scripts/chrome-manifest).
func DefaultRoot() (string, error) {
	dir, err := platform.ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Dir(dir), nil
}

// ResolvePaths fills in the defaults for empty values and makes every path
// absolute. An empty root is derived with DefaultRoot. Relative input and
// output overrides are taken relative to the root.
//
// Defaults: <root>/manifest.json and <root>/www/manifest.json.
func ResolvePaths(root, input, output string) (Paths, error) {
	if root == "" {
		r, err := DefaultRoot()
		if err != nil {
			return Paths{}, fmt.Errorf("deriving project root: %w", err)
		}
		root = r
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return Paths{}, fmt.Errorf("resolving project root %s: %w", root, err)
	}

	if input == "" {
		input = branding.ManifestFile()
	}
	if output == "" {
		output = filepath.Join(branding.OutputDir(), branding.ManifestFile())
	}

	return Paths{
		Root:   root,
		Input:  underRoot(root, input),
		Output: underRoot(root, output),
	}, nil
}

func underRoot(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
