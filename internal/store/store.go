// Package store reads and writes changelog files. Writes replace the whole
// file through a temp file and rename so a failed write never leaves a
// partially written changelog behind.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultNames are the file names searched for when no changelog is given,
// in order of preference.
var DefaultNames = []string{"CHANGELOG", "CHANGELOG.md", "CHANGELOG.rst"}

// ErrNotFound is returned by Locate when no changelog file exists.
var ErrNotFound = errors.New("changelog file not provided and not found")

// File is a changelog stored on disk.
type File struct {
	Path string
}

// NewFile returns a store for the file at path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Read returns the whole file content.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.Path, err)
	}
	return string(data), nil
}

// Write replaces the file content with text atomically. The file keeps its
// permission bits.
func (f *File) Write(text string) error {
	return atomicWriteToFile(f.Path, []byte(text))
}

// Locate returns path if it is set, otherwise the first of DefaultNames
// that exists in dir.
func Locate(path, dir string) (string, error) {
	if path != "" {
		return path, nil
	}
	for _, name := range DefaultNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %v)", ErrNotFound, dir, DefaultNames)
}

// atomicWriteToFile writes data to path using temp file + rename pattern.
func atomicWriteToFile(path string, data []byte) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
