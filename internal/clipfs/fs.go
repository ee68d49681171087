// Package clipfs is a filesystem rooted at the clipb per-user state
// directory. Config and history files are read and written relative to it,
// which keeps path handling in one place and makes tests trivial to isolate
// via NewWithRoot.
package clipfs

import (
	"io/fs"
	"os"
	"path/filepath"
)

const appDir = "clipb"

// ClipFS is a filesystem rooted at the clipb state directory.
type ClipFS struct {
	root string
}

// New creates a ClipFS rooted at the platform user config directory
// (e.g. ~/.config/clipb on Linux). The directory is created if absent.
func New() (*ClipFS, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	root := filepath.Join(configDir, appDir)
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, err
	}

	return &ClipFS{root: root}, nil
}

// NewWithRoot creates a ClipFS with a custom root (for testing and the
// --dir flag). The directory is not created until the first write.
func NewWithRoot(root string) *ClipFS {
	return &ClipFS{root: root}
}

// Open implements fs.FS.
func (cfs *ClipFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	return os.Open(filepath.Join(cfs.root, name))
}

// ReadFile reads a file relative to the state directory.
func (cfs *ClipFS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}

	return os.ReadFile(filepath.Join(cfs.root, name))
}

// WriteFile writes data to a file relative to the state directory,
// creating parent directories as needed.
func (cfs *ClipFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "writefile", Path: name, Err: fs.ErrInvalid}
	}

	fullPath := filepath.Join(cfs.root, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, data, perm)
}

// Remove removes a file relative to the state directory.
func (cfs *ClipFS) Remove(name string) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrInvalid}
	}

	return os.Remove(filepath.Join(cfs.root, name))
}

// Root returns the root directory path.
func (cfs *ClipFS) Root() string {
	return cfs.root
}
