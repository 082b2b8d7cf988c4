package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func stubExecutable(t *testing.T, path string, err error) {
	t.Helper()
	orig := executable
	executable = func() (string, error) { return path, err }
	t.Cleanup(func() { executable = orig })
}

func TestExecutableDir(t *testing.T) {
	tmp := t.TempDir()
	bin := filepath.Join(tmp, "scripts", "chrome-manifest")
	if err := os.MkdirAll(filepath.Dir(bin), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bin, []byte("bin"), 0755); err != nil {
		t.Fatal(err)
	}
	stubExecutable(t, bin, nil)

	dir, err := ExecutableDir()
	if err != nil {
		t.Fatalf("ExecutableDir() error: %v", err)
	}
	want, _ := filepath.EvalSymlinks(filepath.Join(tmp, "scripts"))
	if dir != want {
		t.Errorf("ExecutableDir() = %q, want %q", dir, want)
	}
}

func TestExecutableDir_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}
	tmp := t.TempDir()
	target := filepath.Join(tmp, "project", "scripts", "chrome-manifest")
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("bin"), 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "chrome-manifest")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}
	stubExecutable(t, link, nil)

	dir, err := ExecutableDir()
	if err != nil {
		t.Fatalf("ExecutableDir() error: %v", err)
	}
	want, _ := filepath.EvalSymlinks(filepath.Join(tmp, "project", "scripts"))
	if dir != want {
		t.Errorf("ExecutableDir() = %q, want %q", dir, want)
	}
}

func TestExecutableDir_LookupError(t *testing.T) {
	stubExecutable(t, "", errors.New("no executable"))

	if _, err := ExecutableDir(); err == nil {
		t.Fatal("expected error when executable lookup fails, got nil")
	}
}
