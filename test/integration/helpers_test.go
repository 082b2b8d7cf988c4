//go:build integration

package integration_test

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// binPath is the chrome-manifest binary built once for the whole suite.
var binPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "chrome-manifest-bin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating build dir: %v\n", err)
		os.Exit(1)
	}

	name := "chrome-manifest"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath = filepath.Join(dir, name)

	build := exec.Command("go", "build", "-o", binPath, "../..")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "building chrome-manifest: %v\n", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// testProject is an extension checkout with the binary under scripts/.
type testProject struct {
	Root   string
	Input  string
	Output string
	Bin    string
}

// setupProject lays out <root>/manifest.json, <root>/www/ and a copy of the
// binary at <root>/scripts/, mirroring how the build step is installed.
func setupProject(t *testing.T, manifest string) *testProject {
	t.Helper()

	root := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	p := &testProject{
		Root:   root,
		Input:  filepath.Join(root, "manifest.json"),
		Output: filepath.Join(root, "www", "manifest.json"),
		Bin:    filepath.Join(root, "scripts", filepath.Base(binPath)),
	}

	mkdirAll(t, filepath.Join(root, "www"))
	mkdirAll(t, filepath.Join(root, "scripts"))
	if manifest != "" {
		writeFile(t, p.Input, manifest)
	}

	data, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("reading binary: %v", err)
	}
	if err := os.WriteFile(p.Bin, data, 0755); err != nil {
		t.Fatalf("installing binary: %v", err)
	}
	return p
}

// run executes the installed binary from an unrelated working directory.
func (p *testProject) run(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(p.Bin, args...)
	cmd.Dir = t.TempDir()
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return out.String(), errOut.String(), exitErr.ExitCode()
	}
	if err != nil {
		t.Fatalf("running %s: %v", p.Bin, err)
	}
	return out.String(), errOut.String(), 0
}

func mkdirAll(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist", path)
	}
}
