package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Verifier checks whether build directories are present.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyDirs reports whether every dir exists under root.
// Any existing entry counts, matching a plain existence check on the shared folder.
func (v *Verifier) VerifyDirs(root string, dirs []string) (bool, error) {
	for _, dir := range dirs {
		path := filepath.Join(root, dir)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat build dir"), "path", path)
		}
	}
	return true, nil
}
