// Package git implements ports.SourceControl on top of the git CLI.
package git

import (
	"context"
	"strings"

	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceControl = (*Repository)(nil)

// Repository runs git commands in a working tree.
type Repository struct {
	executor ports.Executor
	dir      string
}

// NewRepository creates a Repository for the working tree at dir.
// An empty dir means the current directory.
func NewRepository(executor ports.Executor, dir string) *Repository {
	return &Repository{executor: executor, dir: dir}
}

// IsDirty reports whether `git diff --shortstat` prints anything.
// Untracked files do not make the tree dirty.
func (r *Repository) IsDirty(ctx context.Context) (bool, error) {
	out, err := r.executor.Output(ctx, r.git("diff", "--shortstat"))
	if err != nil {
		return false, zerr.Wrap(err, "failed to read working tree status")
	}
	return strings.TrimSpace(out) != "", nil
}

// Head returns the hash of HEAD.
func (r *Repository) Head(ctx context.Context) (domain.Commit, error) {
	out, err := r.executor.Output(ctx, r.git("rev-parse", "HEAD"))
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrCommitUnavailable.Error())
	}

	hash := strings.TrimSpace(out)
	if hash == "" {
		return "", domain.ErrCommitUnavailable
	}
	return domain.Commit(hash), nil
}

// Tag creates the annotated release tag on HEAD.
func (r *Repository) Tag(ctx context.Context, version domain.Version) error {
	return r.executor.Run(ctx, r.git("tag", "-a", version.Tag(), "-m", "Release "+version.String()))
}

func (r *Repository) git(args ...string) domain.Command {
	return domain.Command{Name: "git", Args: args, Dir: r.dir}
}
