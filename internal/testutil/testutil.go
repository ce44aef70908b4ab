// Package testutil provides common test helpers for the envperm project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/envperm/internal/profile"
	"github.com/spf13/afero"
)

// MemHomeDir는 메모리 파일시스템에서 사용하는 홈 디렉토리 경로다.
const MemHomeDir = "/home/tester"

// TempHome creates a temporary home directory and points $HOME at it for the
// duration of the test. Tests using it must not call t.Parallel.
func TempHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

// MemResolver returns a Resolver backed by an in-memory filesystem whose home
// directory already exists.
func MemResolver(t *testing.T) (*profile.Resolver, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(MemHomeDir, 0755); err != nil {
		t.Fatalf("MemResolver: mkdir failed: %v", err)
	}
	r := &profile.Resolver{
		Fs:   fs,
		Home: func() (string, error) { return MemHomeDir, nil },
	}
	return r, fs
}

// WriteProfile writes content to the named profile file under home.
func WriteProfile(t *testing.T, fs afero.Fs, home, name, content string) string {
	t.Helper()

	path := filepath.Join(home, name)
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteProfile: write failed: %v", err)
	}
	return path
}

// ReadProfile reads the named profile file under home.
func ReadProfile(t *testing.T, fs afero.Fs, home, name string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, filepath.Join(home, name))
	if err != nil {
		t.Fatalf("ReadProfile: read failed: %v", err)
	}
	return string(data)
}

// ProfileExists reports whether the named profile file exists under home.
func ProfileExists(t *testing.T, fs afero.Fs, home, name string) bool {
	t.Helper()

	ok, err := afero.Exists(fs, filepath.Join(home, name))
	if err != nil {
		t.Fatalf("ProfileExists: stat failed: %v", err)
	}
	return ok
}

// DenyWriteFs wraps an afero.Fs and refuses write-opens of files whose base
// name is Denied, like a read-only profile on disk.
type DenyWriteFs struct {
	afero.Fs
	Denied string
}

// OpenFile fails with os.ErrPermission for write-opens of the denied file.
func (d DenyWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == d.Denied && flag&(os.O_WRONLY|os.O_RDWR|os.O_APPEND) != 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.OpenFile(name, flag, perm)
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}
