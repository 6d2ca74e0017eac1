package ports

import (
	"context"

	"go.trai.ch/ferry/internal/core/domain"
)

// SourceControl defines the operations needed from the version control system.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_control.go -destination=mocks/mock_source_control.go -package=mocks
type SourceControl interface {
	// IsDirty reports whether the working tree has uncommitted changes.
	IsDirty(ctx context.Context) (bool, error)
	// Head returns the hash of the current HEAD.
	Head(ctx context.Context) (domain.Commit, error)
	// Tag creates an annotated tag for the version on HEAD.
	Tag(ctx context.Context, version domain.Version) error
}
