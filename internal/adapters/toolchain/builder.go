// Package toolchain drives the native build tools of each supported platform.
package toolchain

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/ferry/internal/adapters/shell"
	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PlatformBuilder = (*Builder)(nil)

// Builder implements ports.PlatformBuilder.
type Builder struct {
	executor ports.Executor
	logger   ports.Logger
	root     string
	darwin   domain.DarwinToolchain
	windows  domain.WindowsToolchain
}

// NewBuilder creates a Builder for the configured project layout.
func NewBuilder(executor ports.Executor, logger ports.Logger, s *domain.Settings) *Builder {
	return &Builder{
		executor: executor,
		logger:   logger,
		root:     s.Root,
		darwin:   s.Darwin,
		windows:  s.Windows,
	}
}

// Build runs every invocation for the platform. A failing invocation is logged
// and the remaining invocations still run.
func (b *Builder) Build(ctx context.Context, platform domain.Platform) error {
	commands, err := b.Commands(platform)
	if err != nil {
		return err
	}

	for _, cmd := range commands {
		b.logger.Info("Running " + cmd.String())
		if err := b.executor.Run(ctx, cmd); err != nil {
			b.logger.Warn(fmt.Sprintf("%s exited with status %d, continuing", cmd.Name, shell.ExitCode(err)))
		}
	}
	return nil
}

// Commands returns the toolchain invocations for the platform in execution order.
func (b *Builder) Commands(platform domain.Platform) ([]domain.Command, error) {
	switch platform {
	case domain.PlatformDarwin:
		return b.xcodebuild(), nil
	case domain.PlatformWindows:
		return b.msbuild(), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedPlatform, "platform "+platform.String()), "platform", platform.String())
	}
}

func (b *Builder) xcodebuild() []domain.Command {
	dir := b.dir(b.darwin.ProjectDir)
	commands := make([]domain.Command, 0, len(b.darwin.Schemes))
	for _, scheme := range b.darwin.Schemes {
		commands = append(commands, domain.Command{
			Name: "xcodebuild",
			Args: []string{"-scheme", scheme},
			Dir:  dir,
		})
	}
	return commands
}

func (b *Builder) msbuild() []domain.Command {
	dir := b.dir(b.windows.ProjectDir)
	commands := make([]domain.Command, 0, len(b.windows.Platforms))
	for _, platform := range b.windows.Platforms {
		commands = append(commands, domain.Command{
			Name: b.windows.MSBuild,
			Args: []string{
				b.windows.Solution,
				"/p:Configuration=Release",
				"/p:Platform=" + platform,
			},
			Dir: dir,
		})
	}
	return commands
}

func (b *Builder) dir(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(b.root, filepath.FromSlash(rel))
}
