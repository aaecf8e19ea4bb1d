// Package testutil provides test fixtures for building throwaway directory
// trees. All files live under t.TempDir() and are cleaned up automatically.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixture holds the root of an isolated directory tree for one test.
type Fixture struct {
	T       *testing.T
	RootDir string
}

// NewFixture creates a fixture rooted in a fresh temp directory.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{T: t, RootDir: t.TempDir()}
}

// Path returns the absolute path for a path relative to the fixture root.
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.RootDir, relPath)
}

// CreateFile creates a file with the given content, creating parent
// directories as needed, and returns its absolute path.
func (f *Fixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := f.Path(relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateFileOfSize creates a file containing exactly size zero bytes.
func (f *Fixture) CreateFileOfSize(relPath string, size int) string {
	f.T.Helper()
	return f.CreateFile(relPath, make([]byte, size))
}

// CreateDir creates a directory (and parents) and returns its absolute path.
func (f *Fixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := f.Path(relPath)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", fullPath, err)
	}
	return fullPath
}

// FileExists reports whether a path exists.
func (f *Fixture) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AssertFileExists fails the test if the file does not exist.
func (f *Fixture) AssertFileExists(path string) {
	f.T.Helper()
	if !f.FileExists(path) {
		f.T.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (f *Fixture) AssertFileNotExists(path string) {
	f.T.Helper()
	if f.FileExists(path) {
		f.T.Errorf("expected file to not exist: %s", path)
	}
}

// ReadFile returns the content of a file, failing the test on error.
func (f *Fixture) ReadFile(path string) []byte {
	f.T.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		f.T.Fatalf("failed to read file %s: %v", path, err)
	}
	return content
}
