package ports

import (
	"context"

	"go.trai.ch/ferry/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of release stages.
type Telemetry interface {
	// Record starts a new vertex for the named unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Stages returns the recorded stages in the order they started.
	Stages() []domain.StageReport
	// Close flushes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Log records a message on the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully if err is nil.
	Complete(err error)
	// Cached marks the vertex as skipped because its result already exists.
	Cached()
}
