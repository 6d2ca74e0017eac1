package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes content digests of build directories.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeDirsHash hashes the relative path and content of every file in dirs under root.
// Dirs and files are visited in sorted order so the digest does not depend on
// directory listing order. Missing dirs contribute only their name.
func (h *Hasher) ComputeDirsHash(root string, dirs []string) (string, error) {
	sorted := slices.Clone(dirs)
	slices.Sort(sorted)

	hasher := xxhash.New()
	for _, dir := range sorted {
		_, _ = hasher.WriteString(filepath.ToSlash(dir))
		_, _ = hasher.Write([]byte{0})

		base := filepath.Join(root, dir)
		files := slices.Collect(h.walker.WalkFiles(base))
		slices.Sort(files)

		for _, rel := range files {
			_, _ = hasher.WriteString(filepath.ToSlash(rel))
			_, _ = hasher.Write([]byte{0})

			sum, err := h.ComputeFileHash(filepath.Join(base, rel))
			if err != nil {
				return "", zerr.Wrap(err, domain.ErrDigestFailed.Error())
			}
			if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
				return "", zerr.Wrap(err, "failed to write hash to digest")
			}
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
