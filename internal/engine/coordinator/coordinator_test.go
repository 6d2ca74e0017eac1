package coordinator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ferry/internal/adapters/fs"
	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
	"go.trai.ch/ferry/internal/core/ports/mocks"
	"go.trai.ch/ferry/internal/engine/coordinator"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var (
	version = domain.Version{Major: 1, Minor: 2, Patch: 3}
	commit  = domain.Commit("abc123")
	darwin  = domain.BuildDirSet{"bacon/darwin32", "bacon/darwin64"}
	windows = domain.BuildDirSet{"bacon/windows32", "bacon/windows64"}
)

type fixture struct {
	settings  *domain.Settings
	shared    string
	versions  *mocks.MockVersionResolver
	source    *mocks.MockSourceControl
	builder   *mocks.MockPlatformBuilder
	exchange  *mocks.MockArtifactExchange
	publisher *mocks.MockPublisher
	ledger    *mocks.MockExchangeLedger
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	settings := domain.DefaultSettings("/src/bacon")
	settings.SharedRoot = "/share"
	settings.SettleDelay = 0

	f := &fixture{
		settings:  settings,
		shared:    filepath.Join("/share", "bacon-1.2.3", "abc123"),
		versions:  mocks.NewMockVersionResolver(ctrl),
		source:    mocks.NewMockSourceControl(ctrl),
		builder:   mocks.NewMockPlatformBuilder(ctrl),
		exchange:  mocks.NewMockArtifactExchange(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		ledger:    mocks.NewMockExchangeLedger(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) coordinator(t *testing.T, goos string) *coordinator.Coordinator {
	t.Helper()
	return f.coordinatorWith(t, goos, f.exchange)
}

// coordinatorWith builds a coordinator around the given exchange, keeping the fixture's other mocks.
func (f *fixture) coordinatorWith(t *testing.T, goos string, exchange ports.ArtifactExchange) *coordinator.Coordinator {
	t.Helper()
	ctrl := gomock.NewController(t)

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()

	return coordinator.New(f.settings, goos, coordinator.Collaborators{
		Versions:  f.versions,
		Source:    f.source,
		Builder:   f.builder,
		Exchange:  exchange,
		Publisher: f.publisher,
		Ledger:    f.ledger,
		Logger:    f.logger,
		Telemetry: telemetry,
	})
}

// expectRecord accepts a ledger entry for the given transfer.
func (f *fixture) expectRecord(platform string, dir domain.Direction, dirs domain.BuildDirSet) {
	f.exchange.EXPECT().Digest("/src/bacon", dirs).Return("00ff00ff00ff00ff", nil)
	f.ledger.EXPECT().Put(gomock.Any()).DoAndReturn(func(r domain.ExchangeRecord) error {
		if r.Key != "bacon-1.2.3@abc123" || r.Platform != platform || r.Direction != dir {
			return errors.New("unexpected ledger record " + r.ID())
		}
		return nil
	})
}

func TestRun_VersionMismatchStopsBeforeBuild(t *testing.T) {
	f := newFixture(t)
	mismatch := zerr.With(zerr.Wrap(domain.ErrVersionMismatch, "1.2.4 vs 1.2.3"), "declared", "1.2.3")
	f.versions.EXPECT().Resolve(gomock.Any()).Return(domain.Version{}, mismatch)

	outcome, err := f.coordinator(t, "darwin").Run(context.Background(), domain.ModeDevelopment)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionMismatch)
	assert.Zero(t, outcome)
}

func TestRun_UnsupportedPlatformStopsFirst(t *testing.T) {
	f := newFixture(t)

	_, err := f.coordinator(t, "linux").Run(context.Background(), domain.ModeDist)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
	assert.Contains(t, err.Error(), "linux")
}

func TestRun_DevelopmentAwaitingCounterpart(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil),
		f.source.EXPECT().Head(gomock.Any()).Return(commit, nil),
		f.builder.EXPECT().Build(gomock.Any(), domain.PlatformDarwin).Return(nil),
		f.exchange.EXPECT().Upload(gomock.Any(), f.shared, darwin).Return(nil),
		f.exchange.EXPECT().Download(gomock.Any(), f.shared, windows).Return(false, nil),
	)
	f.expectRecord("darwin", domain.DirectionUpload, darwin)

	outcome, err := f.coordinator(t, "darwin").Run(context.Background(), domain.ModeDevelopment)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAwaitingCounterpart, outcome)
}

func TestRun_DevelopmentExchanged(t *testing.T) {
	f := newFixture(t)

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
	f.builder.EXPECT().Build(gomock.Any(), domain.PlatformWindows).Return(nil)
	f.exchange.EXPECT().Upload(gomock.Any(), f.shared, windows).Return(nil)
	f.exchange.EXPECT().Download(gomock.Any(), f.shared, darwin).Return(true, nil)
	f.expectRecord("windows", domain.DirectionUpload, windows)
	f.expectRecord("darwin", domain.DirectionDownload, darwin)

	outcome, err := f.coordinator(t, "windows").Run(context.Background(), domain.ModeDevelopment)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeExchanged, outcome)
}

func TestRun_DevelopmentAlwaysBuilds(t *testing.T) {
	f := newFixture(t)

	// Has is never consulted in development mode, even on a rerun of the same commit.
	for range 2 {
		f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
		f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
		f.builder.EXPECT().Build(gomock.Any(), domain.PlatformDarwin).Return(nil)
		f.exchange.EXPECT().Upload(gomock.Any(), f.shared, darwin).Return(nil)
		f.exchange.EXPECT().Download(gomock.Any(), f.shared, windows).Return(false, nil)
		f.expectRecord("darwin", domain.DirectionUpload, darwin)
	}

	c := f.coordinator(t, "darwin")
	for range 2 {
		outcome, err := c.Run(context.Background(), domain.ModeDevelopment)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeAwaitingCounterpart, outcome)
	}
}

func TestRun_DistDirtyTree(t *testing.T) {
	f := newFixture(t)

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().IsDirty(gomock.Any()).Return(true, nil)

	_, err := f.coordinator(t, "darwin").Run(context.Background(), domain.ModeDist)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDirtyRepository)
	assert.Equal(t, "git repo is dirty", err.Error())
}

func TestRun_DistPublishes(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil),
		f.source.EXPECT().IsDirty(gomock.Any()).Return(false, nil),
		f.source.EXPECT().Head(gomock.Any()).Return(commit, nil),
		f.exchange.EXPECT().Has(gomock.Any(), f.shared, windows).Return(false, nil),
		f.builder.EXPECT().Build(gomock.Any(), domain.PlatformWindows).Return(nil),
		f.exchange.EXPECT().Upload(gomock.Any(), f.shared, windows).Return(nil),
		f.exchange.EXPECT().Download(gomock.Any(), f.shared, darwin).Return(true, nil),
		f.publisher.EXPECT().Publish(gomock.Any()).Return(nil),
		f.source.EXPECT().Tag(gomock.Any(), version).Return(nil),
	)
	f.expectRecord("windows", domain.DirectionUpload, windows)
	f.expectRecord("darwin", domain.DirectionDownload, darwin)

	outcome, err := f.coordinator(t, "windows").Run(context.Background(), domain.ModeDist)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePublished, outcome)
}

func TestRun_DistSkipsBuildWhenUploaded(t *testing.T) {
	f := newFixture(t)

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().IsDirty(gomock.Any()).Return(false, nil)
	f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
	f.exchange.EXPECT().Has(gomock.Any(), f.shared, darwin).Return(true, nil)
	f.exchange.EXPECT().Download(gomock.Any(), f.shared, windows).Return(true, nil)
	f.expectRecord("windows", domain.DirectionDownload, windows)
	f.publisher.EXPECT().Publish(gomock.Any()).Return(nil)
	f.source.EXPECT().Tag(gomock.Any(), version).Return(nil)

	outcome, err := f.coordinator(t, "darwin").Run(context.Background(), domain.ModeDist)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePublished, outcome)
}

func TestRun_DistAwaitingCounterpartDoesNotPublish(t *testing.T) {
	f := newFixture(t)

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().IsDirty(gomock.Any()).Return(false, nil)
	f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
	f.exchange.EXPECT().Has(gomock.Any(), f.shared, darwin).Return(false, nil)
	f.builder.EXPECT().Build(gomock.Any(), domain.PlatformDarwin).Return(nil)
	f.exchange.EXPECT().Upload(gomock.Any(), f.shared, darwin).Return(nil)
	f.expectRecord("darwin", domain.DirectionUpload, darwin)
	f.exchange.EXPECT().Download(gomock.Any(), f.shared, windows).Return(false, nil)

	outcome, err := f.coordinator(t, "darwin").Run(context.Background(), domain.ModeDist)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAwaitingCounterpart, outcome)
}

func TestRun_PublishAndTagFailuresAreWarnings(t *testing.T) {
	f := newFixture(t)

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().IsDirty(gomock.Any()).Return(false, nil)
	f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
	f.exchange.EXPECT().Has(gomock.Any(), f.shared, darwin).Return(true, nil)
	f.exchange.EXPECT().Download(gomock.Any(), f.shared, windows).Return(true, nil)
	f.expectRecord("windows", domain.DirectionDownload, windows)
	f.publisher.EXPECT().Publish(gomock.Any()).Return(domain.ErrCommandFailed)
	f.source.EXPECT().Tag(gomock.Any(), version).Return(domain.ErrCommandFailed)
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	outcome, err := f.coordinator(t, "darwin").Run(context.Background(), domain.ModeDist)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePublished, outcome)
}

func TestRun_UploadFailureIsWarning(t *testing.T) {
	f := newFixture(t)

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
	f.builder.EXPECT().Build(gomock.Any(), domain.PlatformDarwin).Return(nil)
	f.exchange.EXPECT().Upload(gomock.Any(), f.shared, darwin).Return(domain.ErrCopyFailed)
	f.exchange.EXPECT().Download(gomock.Any(), f.shared, windows).Return(false, nil)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	outcome, err := f.coordinator(t, "darwin").Run(context.Background(), domain.ModeDevelopment)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAwaitingCounterpart, outcome)
}

func TestRun_DownloadFailureMeansNotAvailable(t *testing.T) {
	f := newFixture(t)

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().IsDirty(gomock.Any()).Return(false, nil)
	f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
	f.exchange.EXPECT().Has(gomock.Any(), f.shared, darwin).Return(true, nil)
	f.exchange.EXPECT().Download(gomock.Any(), f.shared, windows).Return(false, domain.ErrCopyFailed)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	outcome, err := f.coordinator(t, "darwin").Run(context.Background(), domain.ModeDist)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAwaitingCounterpart, outcome)
}

func TestRun_LedgerFailureIsWarning(t *testing.T) {
	f := newFixture(t)

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
	f.builder.EXPECT().Build(gomock.Any(), domain.PlatformDarwin).Return(nil)
	f.exchange.EXPECT().Upload(gomock.Any(), f.shared, darwin).Return(nil)
	f.exchange.EXPECT().Digest("/src/bacon", darwin).Return("", domain.ErrDigestFailed)
	f.ledger.EXPECT().Put(gomock.Any()).Return(domain.ErrLedgerWriteFailed)
	f.exchange.EXPECT().Download(gomock.Any(), f.shared, windows).Return(false, nil)
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	outcome, err := f.coordinator(t, "darwin").Run(context.Background(), domain.ModeDevelopment)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAwaitingCounterpart, outcome)
}

func TestRun_SettleDelayHonorsCancellation(t *testing.T) {
	f := newFixture(t)
	f.settings.SettleDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().Head(gomock.Any()).DoAndReturn(func(context.Context) (domain.Commit, error) {
		cancel()
		return commit, nil
	})

	_, err := f.coordinator(t, "darwin").Run(ctx, domain.ModeDevelopment)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InterruptDuringBuildLeavesSharedUntouched(t *testing.T) {
	f := newFixture(t)
	root := t.TempDir()
	f.settings.Root = root
	f.settings.SharedRoot = t.TempDir()
	shared := filepath.Join(f.settings.SharedRoot, "bacon-1.2.3", "abc123")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
	f.builder.EXPECT().Build(gomock.Any(), domain.PlatformDarwin).DoAndReturn(
		func(context.Context, domain.Platform) error {
			require.NoError(t, os.MkdirAll(filepath.Join(root, "bacon/darwin32"), 0o750))
			cancel()
			return nil
		})
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	exchange := fs.NewExchange(root, f.logger)
	outcome, err := f.coordinatorWith(t, "darwin", exchange).Run(ctx, domain.ModeDevelopment)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, outcome)

	assert.NoDirExists(t, filepath.Join(shared, "bacon/darwin32"))
	ok, err := exchange.Has(context.Background(), shared, darwin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRun_InterruptDuringPublishIsFatal(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().IsDirty(gomock.Any()).Return(false, nil)
	f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
	f.exchange.EXPECT().Has(gomock.Any(), f.shared, darwin).Return(true, nil)
	f.exchange.EXPECT().Download(gomock.Any(), f.shared, windows).Return(true, nil)
	f.expectRecord("windows", domain.DirectionDownload, windows)
	f.publisher.EXPECT().Publish(gomock.Any()).DoAndReturn(func(context.Context) error {
		cancel()
		return context.Canceled
	})
	f.source.EXPECT().Tag(gomock.Any(), version).Return(context.Canceled)
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	_, err := f.coordinator(t, "darwin").Run(ctx, domain.ModeDist)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatus(t *testing.T) {
	f := newFixture(t)

	f.versions.EXPECT().Resolve(gomock.Any()).Return(version, nil)
	f.source.EXPECT().Head(gomock.Any()).Return(commit, nil)
	f.exchange.EXPECT().Has(gomock.Any(), f.shared, darwin).Return(true, nil)
	f.exchange.EXPECT().Has(gomock.Any(), f.shared, windows).Return(false, nil)

	uploaded := &domain.ExchangeRecord{
		Key:       "bacon-1.2.3@abc123",
		Platform:  "darwin",
		Direction: domain.DirectionUpload,
		Digest:    "00ff00ff00ff00ff",
	}
	f.ledger.EXPECT().Get("bacon-1.2.3@abc123/darwin/upload").Return(uploaded, nil)
	f.ledger.EXPECT().Get("bacon-1.2.3@abc123/darwin/download").Return(nil, nil)
	f.ledger.EXPECT().Get("bacon-1.2.3@abc123/windows/upload").Return(nil, nil)
	f.ledger.EXPECT().Get("bacon-1.2.3@abc123/windows/download").Return(nil, domain.ErrLedgerReadFailed)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	status, err := f.coordinator(t, "linux").Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, f.shared, status.SharedPath)
	assert.Equal(t, "bacon-1.2.3@abc123", status.Key.String())
	assert.True(t, status.Present[domain.PlatformDarwin])
	assert.False(t, status.Present[domain.PlatformWindows])
	assert.False(t, status.Complete())

	assert.Equal(t, []domain.ExchangeRecord{*uploaded}, status.Transfers[domain.PlatformDarwin])
	assert.Empty(t, status.Transfers[domain.PlatformWindows])
}

func TestStatus_VersionMismatch(t *testing.T) {
	f := newFixture(t)
	f.versions.EXPECT().Resolve(gomock.Any()).Return(domain.Version{}, domain.ErrVersionMismatch)

	_, err := f.coordinator(t, "darwin").Status(context.Background())
	assert.ErrorIs(t, err, domain.ErrVersionMismatch)
}
