package ports

import (
	"context"

	"go.trai.ch/ferry/internal/core/domain"
)

// VersionResolver produces the single version both the package manifest and the native header agree on.
//
//go:generate go run go.uber.org/mock/mockgen -source=version_resolver.go -destination=mocks/mock_version_resolver.go -package=mocks
type VersionResolver interface {
	// Resolve returns the agreed version, or domain.ErrVersionMismatch.
	Resolve(ctx context.Context) (domain.Version, error)
}
