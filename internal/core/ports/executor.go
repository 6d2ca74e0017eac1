package ports

import (
	"context"

	"go.trai.ch/ferry/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command, streaming its output to the logger.
	// It returns an error carrying the exit code if the command fails.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes the command and returns its standard output.
	Output(ctx context.Context, cmd domain.Command) (string, error)
}
