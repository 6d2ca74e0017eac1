package ports

import (
	"context"

	"go.trai.ch/ferry/internal/core/domain"
)

// PlatformBuilder invokes the native toolchain of a platform.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type PlatformBuilder interface {
	// Build runs every toolchain invocation for the platform.
	// Toolchain failures are reported to the logger and do not produce an error.
	Build(ctx context.Context, platform domain.Platform) error
}
