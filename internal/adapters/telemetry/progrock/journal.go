package progrock

import (
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/ferry/internal/core/domain"
)

var _ progrock.Writer = (*Journal)(nil)

// Journal is a progrock.Writer that folds status updates into the latest
// state of every vertex, in the order the vertices first appeared.
type Journal struct {
	mu     sync.Mutex
	order  []string
	stages map[string]*domain.StageReport
}

// NewJournal creates an empty Journal.
func NewJournal() *Journal {
	return &Journal{stages: make(map[string]*domain.StageReport)}
}

// WriteStatus applies one status update.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, v := range update.Vertexes {
		r := j.report(v.Id)
		r.Name = v.Name
		switch {
		case v.Error != nil:
			r.State = domain.StageFailed
		case v.Cached:
			r.State = domain.StageCached
		case v.Completed != nil:
			r.State = domain.StageDone
		default:
			r.State = domain.StageRunning
		}
	}

	for _, l := range update.Logs {
		r := j.report(l.Vertex)
		for _, line := range strings.Split(string(l.Data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				r.Notes = append(r.Notes, line)
			}
		}
	}
	return nil
}

// Close implements progrock.Writer. The journal stays readable afterwards.
func (j *Journal) Close() error {
	return nil
}

// Stages returns a snapshot of every recorded vertex.
func (j *Journal) Stages() []domain.StageReport {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]domain.StageReport, 0, len(j.order))
	for _, id := range j.order {
		r := *j.stages[id]
		r.Notes = append([]string(nil), r.Notes...)
		out = append(out, r)
	}
	return out
}

func (j *Journal) report(id string) *domain.StageReport {
	r, ok := j.stages[id]
	if !ok {
		r = &domain.StageReport{}
		j.stages[id] = r
		j.order = append(j.order, id)
	}
	return r
}
