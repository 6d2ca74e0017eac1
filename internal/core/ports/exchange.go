package ports

import (
	"context"

	"go.trai.ch/ferry/internal/core/domain"
)

// ArtifactExchange moves build directories between local disk and the shared location.
//
//go:generate go run go.uber.org/mock/mockgen -source=exchange.go -destination=mocks/mock_exchange.go -package=mocks
type ArtifactExchange interface {
	// Upload copies every file of the local dirs into sharedPath, replacing files of the same name.
	Upload(ctx context.Context, sharedPath string, dirs domain.BuildDirSet) error

	// Has reports whether every dir exists under sharedPath.
	Has(ctx context.Context, sharedPath string, dirs domain.BuildDirSet) (bool, error)

	// Download copies the dirs from sharedPath to local disk.
	// It returns false without touching local disk if any dir is missing.
	Download(ctx context.Context, sharedPath string, dirs domain.BuildDirSet) (bool, error)

	// Digest computes a content digest of the dirs under root.
	Digest(root string, dirs domain.BuildDirSet) (string, error)
}
