// Package progrock records release stages as progrock vertices.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock recorder.
type Recorder struct {
	journal *Journal
	rec     *progrock.Recorder
}

// New creates a Recorder whose updates are kept in a Journal.
func New() *Recorder {
	journal := NewJournal()
	return &Recorder{
		journal: journal,
		rec:     progrock.NewRecorder(journal),
	}
}

// Record starts a vertex for the named stage. Vertices are keyed by name,
// so recording the same stage twice updates one vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Stages returns the recorded stages in the order they started.
func (r *Recorder) Stages() []domain.StageReport {
	return r.journal.Stages()
}

// Close flushes the recording session.
func (r *Recorder) Close() error {
	return r.journal.Close()
}
