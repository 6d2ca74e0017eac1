package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ferry/internal/app"
	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newApplication(ctrl *gomock.Controller) (*app.App, *mocks.MockConfigLoader, *mocks.MockLogger) {
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(
		mockLoader,
		mocks.NewMockExecutor(ctrl),
		mockLogger,
		mocks.NewMockTelemetry(ctrl),
	)
	return application, mockLoader, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	application, _, mockLogger := newApplication(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ConfigurationMissing verifies that a missing local settings file exits 1 through the logger.
func TestRun_ConfigurationMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	application, mockLoader, mockLogger := newApplication(ctrl)
	mockLoader.EXPECT().Load(".", gomock.Any()).Return(nil, domain.ErrConfigurationMissing)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() { cleaned = true }, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--mode", "dist"}, stderr, provider, func(a *app.App) {
		a.WithPlatform("darwin")
	})

	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}
