// Package shell provides the command executor used to drive external tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes the command with stdout streamed to Info and stderr streamed to Warn.
func (e *Executor) Run(ctx context.Context, c domain.Command) error {
	if c.Name == "" {
		return nil
	}

	stdout := &logWriter{logger: e.logger, level: domain.LogLevelInfo}
	stderr := &logWriter{logger: e.logger, level: domain.LogLevelWarn}
	defer func() {
		_ = stdout.Close()
		_ = stderr.Close()
	}()

	cmd := command(ctx, c)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return commandError(c, cmd.Run())
}

// Output executes the command and returns its stdout. Stderr is streamed to Warn.
func (e *Executor) Output(ctx context.Context, c domain.Command) (string, error) {
	if c.Name == "" {
		return "", nil
	}

	var out bytes.Buffer
	stderr := &logWriter{logger: e.logger, level: domain.LogLevelWarn}
	defer func() {
		_ = stderr.Close()
	}()

	cmd := command(ctx, c)
	cmd.Stdout = &out
	cmd.Stderr = stderr

	if err := commandError(c, cmd.Run()); err != nil {
		return "", err
	}
	return out.String(), nil
}

func command(ctx context.Context, c domain.Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // commands come from the project configuration
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	return cmd
}

func commandError(c domain.Command, err error) error {
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.Wrap(errors.Join(domain.ErrCommandFailed, err), c.Name)
	wrapped = zerr.With(wrapped, "command", c.String())
	return zerr.With(wrapped, "exit_code", exitCode)
}

// ExitCode extracts the exit code recorded on an error returned by Run or Output.
// It returns -1 if the error carries no exit code.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

type logWriter struct {
	logger ports.Logger
	level  domain.LogLevel
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line that was not newline terminated.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// MSBuild writes CRLF.
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == domain.LogLevelInfo {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}
