// in: internal/filesystem/filesystem.go
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Filesystem is the subset of OS file access the report inputs need.
type Filesystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	Abs(path string) (string, error)
}

// DefaultFS implements the Filesystem interface using the standard `os` and `filepath` packages.
// It represents the real, underlying filesystem of the host operating system.
type DefaultFS struct{}

func (DefaultFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (DefaultFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (DefaultFS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}
