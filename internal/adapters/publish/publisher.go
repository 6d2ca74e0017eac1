// Package publish uploads the distributable package to the package index.
package publish

import (
	"context"

	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
)

var _ ports.Publisher = (*Publisher)(nil)

// Publisher runs the configured publish command from the project root.
type Publisher struct {
	executor ports.Executor
	command  domain.Command
}

// NewPublisher creates a Publisher for the configured publish command.
func NewPublisher(executor ports.Executor, s *domain.Settings) *Publisher {
	var cmd domain.Command
	if len(s.Publish) > 0 {
		cmd = domain.Command{Name: s.Publish[0], Args: s.Publish[1:], Dir: s.Root}
	}
	return &Publisher{executor: executor, command: cmd}
}

// Publish builds the source distribution and uploads it.
func (p *Publisher) Publish(ctx context.Context) error {
	return p.executor.Run(ctx, p.command)
}
