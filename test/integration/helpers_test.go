//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // TOOLPATH_HOME, where config.yaml lives
	BinDir      string // prepended to PATH; holds fake node and claude
	UserHomeDir string // HOME, probed for ~/ conventional paths
}

// setupTestEnv creates isolated temp directories and points the environment
// at them so resolution only sees what the test installs.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("integration tests need a native POSIX host")
	}

	env := &testEnv{
		HomeDir:     t.TempDir(),
		BinDir:      t.TempDir(),
		UserHomeDir: t.TempDir(),
	}
	t.Setenv("TOOLPATH_HOME", env.HomeDir)
	t.Setenv("HOME", env.UserHomeDir)
	t.Setenv("NVM_DIR", "")
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return env
}

// writeExecutable writes an executable sh script and returns its path.
func writeExecutable(t *testing.T, path, body string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s", path)
		return
	}
	if info.IsDir() {
		t.Errorf("expected a file, found a directory: %s", path)
	}
}
