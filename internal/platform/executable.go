package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// executable is swapped in tests.
var executable = os.Executable

// ExecutableDir returns the absolute directory holding the running binary.
// Symlinks are resolved so a binary linked into another directory still
// reports the directory it was installed in. On Windows, where resolving
// junctions can fail for ordinary paths, the unresolved path is used.
func ExecutableDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		if runtime.GOOS != "windows" {
			return "", fmt.Errorf("resolving symlinks for %s: %w", exe, err)
		}
		resolved = exe
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("making %s absolute: %w", resolved, err)
	}
	return filepath.Dir(abs), nil
}
