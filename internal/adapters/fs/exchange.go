package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ArtifactExchange = (*Exchange)(nil)

// Exchange copies build directories between the project root and a shared path.
type Exchange struct {
	root     string
	logger   ports.Logger
	walker   *Walker
	verifier *Verifier
	hasher   *Hasher
}

// NewExchange creates an Exchange rooted at the project directory.
func NewExchange(root string, logger ports.Logger) *Exchange {
	walker := NewWalker()
	return &Exchange{
		root:     root,
		logger:   logger,
		walker:   walker,
		verifier: NewVerifier(),
		hasher:   NewHasher(walker),
	}
}

// Upload copies the local build dirs into sharedPath.
func (e *Exchange) Upload(ctx context.Context, sharedPath string, dirs domain.BuildDirSet) error {
	e.logger.Info("Copying local build dirs to shared folder...")

	var errs []error
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		src := filepath.Join(e.root, dir)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			e.logger.Warn("build dir " + dir + " not found, skipping")
			continue
		}
		if err := e.copyDirFiles(ctx, src, filepath.Join(sharedPath, dir)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Has reports whether every dir is present under sharedPath.
func (e *Exchange) Has(_ context.Context, sharedPath string, dirs domain.BuildDirSet) (bool, error) {
	return e.verifier.VerifyDirs(sharedPath, dirs)
}

// Download copies the dirs from sharedPath into the project root.
// Presence of every dir is checked first so a missing dir leaves local disk untouched.
func (e *Exchange) Download(ctx context.Context, sharedPath string, dirs domain.BuildDirSet) (bool, error) {
	e.logger.Info("Copying counterpart build dirs from shared folder...")

	ok, err := e.verifier.VerifyDirs(sharedPath, dirs)
	if err != nil {
		return false, err
	}
	if !ok {
		e.logger.Info("...not found, finished build")
		return false, nil
	}

	for _, dir := range dirs {
		if err := e.copyDirFiles(ctx, filepath.Join(sharedPath, dir), filepath.Join(e.root, dir)); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Digest computes the content digest of dirs under root.
func (e *Exchange) Digest(root string, dirs domain.BuildDirSet) (string, error) {
	return e.hasher.ComputeDirsHash(root, dirs)
}

// copyDirFiles creates dest only once ctx is known to be live, so an
// interrupted run never leaves an empty dir that Has would count as present.
func (e *Exchange) copyDirFiles(ctx context.Context, src, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_ = os.MkdirAll(dest, 0o750)

	names, err := e.walker.ListFiles(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", src)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return copyFile(filepath.Join(src, name), filepath.Join(dest, name))
		})
	}
	return g.Wait()
}

// copyFile replaces dst with a copy of src, keeping its permission bits and modification time.
func copyFile(src, dst string) error {
	fail := func(err error) error {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "src", src), "dst", dst)
	}

	info, err := os.Stat(src)
	if err != nil {
		return fail(err)
	}

	_ = os.Remove(dst)

	in, err := os.Open(src) //nolint:gosec // Paths are derived from configured build dirs
	if err != nil {
		return fail(err)
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // See above
	if err != nil {
		return fail(err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fail(err)
	}
	if err := out.Close(); err != nil {
		return fail(err)
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fail(err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fail(err)
	}
	return nil
}
