// Package adapter contains filesystem and persistence adapters for the checksyntax CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "gooze.dev/pkg/checksyntax/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning a source tree, so the workflow can be tested without
// touching the disk.
type SourceFSAdapter interface {
	// Walk traverses root recursively in lexical order. Returning
	// filepath.SkipDir from fn for a directory prunes it.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ExecutableDir returns the directory the running binary is deployed in.
	ExecutableDir() (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the SourceFSAdapter backed by the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every file and directory under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), filepath.WalkFunc(fn))
}

// ReadFile loads file contents from disk. The handle is closed before returning.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from walking the checked tree
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ExecutableDir resolves symlinks so the tree next to the real binary is checked.
func (a *LocalSourceFSAdapter) ExecutableDir() (m.Path, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable %s: %w", exe, err)
	}

	return m.Path(filepath.Dir(resolved)), nil
}
