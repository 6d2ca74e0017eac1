// Package fs implements the artifact exchange between local build directories
// and the shared location.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Walker enumerates the files of a build directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root, recursively, as a path relative to root.
// A missing root yields nothing.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if !yield(rel) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// ListFiles returns the names of the regular files directly inside dir.
// Subdirectories are not descended into.
func (w *Walker) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
