// Package coordinator sequences a release run: version check, commit capture,
// build, upload, download of the counterpart platform and, in dist mode, publish.
package coordinator

import (
	"context"
	"time"

	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Collaborators are the components a Coordinator drives.
type Collaborators struct {
	Versions  ports.VersionResolver
	Source    ports.SourceControl
	Builder   ports.PlatformBuilder
	Exchange  ports.ArtifactExchange
	Publisher ports.Publisher
	Ledger    ports.ExchangeLedger
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// Coordinator runs the release state machine for one host.
type Coordinator struct {
	settings *domain.Settings
	goos     string
	Collaborators

	now func() time.Time
}

// New creates a Coordinator for the host operating system goos.
func New(settings *domain.Settings, goos string, c Collaborators) *Coordinator {
	return &Coordinator{
		settings:      settings,
		goos:          goos,
		Collaborators: c,
		now:           time.Now,
	}
}

// release carries what earlier stages resolved into later ones.
type release struct {
	mode     domain.Mode
	platform domain.Platform
	version  domain.Version
	key      domain.ReleaseKey
	shared   string
}

// Run executes one release attempt. An absent counterpart is a normal outcome, not an error.
// A cancelled ctx is fatal after any stage, even one whose own failures are only warnings.
func (c *Coordinator) Run(ctx context.Context, mode domain.Mode) (domain.Outcome, error) {
	r := &release{mode: mode}

	if err := c.stage(ctx, domain.StagePlatform, func(_ context.Context, _ ports.Vertex) error {
		p, err := domain.ParsePlatform(c.goos)
		r.platform = p
		return err
	}); err != nil {
		return 0, err
	}

	if err := c.stage(ctx, domain.StageVersionCheck, func(ctx context.Context, _ ports.Vertex) error {
		v, err := c.Versions.Resolve(ctx)
		r.version = v
		return err
	}); err != nil {
		return 0, err
	}

	if err := c.stage(ctx, domain.StageCommitCapture, func(ctx context.Context, _ ports.Vertex) error {
		return c.captureCommit(ctx, r)
	}); err != nil {
		return 0, err
	}

	if err := c.settle(ctx); err != nil {
		return 0, err
	}

	built, err := c.buildIfNeeded(ctx, r)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if built {
		_ = c.stage(ctx, domain.StageUpload, func(ctx context.Context, v ports.Vertex) error {
			return c.upload(ctx, r, v)
		})
	} else {
		c.skip(ctx, domain.StageUpload)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var available bool
	_ = c.stage(ctx, domain.StageDownload, func(ctx context.Context, v ports.Vertex) error {
		available = c.download(ctx, r, v)
		return nil
	})
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !available {
		return domain.OutcomeAwaitingCounterpart, nil
	}

	if !mode.IsDist() {
		c.skip(ctx, domain.StagePublish)
		return domain.OutcomeExchanged, nil
	}

	_ = c.stage(ctx, domain.StagePublish, func(ctx context.Context, v ports.Vertex) error {
		c.publish(ctx, r, v)
		return nil
	})
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return domain.OutcomePublished, nil
}

func (c *Coordinator) captureCommit(ctx context.Context, r *release) error {
	if r.mode.IsDist() {
		dirty, err := c.Source.IsDirty(ctx)
		if err != nil {
			return err
		}
		if dirty {
			return domain.ErrDirtyRepository
		}
	}

	commit, err := c.Source.Head(ctx)
	if err != nil {
		return err
	}

	r.key = domain.ReleaseKey{Project: c.settings.Project, Version: r.version, Commit: commit}
	r.shared = r.key.SharedPath(c.settings.SharedRoot)

	c.Logger.Info("Version " + r.version.String())
	c.Logger.Info("Commit " + commit.String())
	return nil
}

// settle waits the configured delay between commit capture and the build phase.
func (c *Coordinator) settle(ctx context.Context) error {
	if c.settings.SettleDelay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(c.settings.SettleDelay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// buildIfNeeded builds unless a dist run finds its own artifacts already uploaded.
// It reports whether a build ran.
func (c *Coordinator) buildIfNeeded(ctx context.Context, r *release) (bool, error) {
	if r.mode.IsDist() {
		present, err := c.Exchange.Has(ctx, r.shared, c.settings.BuildDirs(r.platform))
		if err != nil {
			c.Logger.Warn("could not check shared folder: " + err.Error())
		}
		if present {
			c.Logger.Info("Build dirs for " + r.platform.String() + " already in shared folder, skipping build")
			c.skip(ctx, domain.StageBuild)
			return false, nil
		}
	}

	err := c.stage(ctx, domain.StageBuild, func(ctx context.Context, _ ports.Vertex) error {
		c.Logger.Info("Building " + r.platform.String())
		return c.Builder.Build(ctx, r.platform)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *Coordinator) upload(ctx context.Context, r *release, v ports.Vertex) error {
	dirs := c.settings.BuildDirs(r.platform)
	if err := c.Exchange.Upload(ctx, r.shared, dirs); err != nil {
		c.warn(v, "upload incomplete: "+err.Error())
		return err
	}
	c.record(r, r.platform, domain.DirectionUpload, dirs)
	return nil
}

// download reports whether the counterpart's artifacts are now on local disk.
// A failed copy counts as not available.
func (c *Coordinator) download(ctx context.Context, r *release, v ports.Vertex) bool {
	other := r.platform.Counterpart()
	dirs := c.settings.BuildDirs(other)

	ok, err := c.Exchange.Download(ctx, r.shared, dirs)
	if err != nil {
		c.warn(v, "download of "+other.String()+" build dirs failed: "+err.Error())
		return false
	}
	if !ok {
		v.Log(domain.LogLevelInfo, other.String()+" build dirs not found")
		return false
	}

	c.record(r, other, domain.DirectionDownload, dirs)
	return true
}

func (c *Coordinator) publish(ctx context.Context, r *release, v ports.Vertex) {
	c.Logger.Info("Publishing " + r.key.String())
	if err := c.Publisher.Publish(ctx); err != nil {
		c.warn(v, "publish failed: "+err.Error())
	}

	c.Logger.Info("Tagging " + r.version.Tag())
	if err := c.Source.Tag(ctx, r.version); err != nil {
		c.warn(v, "tag failed: "+err.Error())
	}
}

// record writes a ledger entry for a completed transfer. Ledger problems never fail a run.
func (c *Coordinator) record(r *release, p domain.Platform, dir domain.Direction, dirs domain.BuildDirSet) {
	if c.Ledger == nil {
		return
	}

	sum, err := c.Exchange.Digest(c.settings.Root, dirs)
	if err != nil {
		c.Logger.Warn(err.Error())
	}

	err = c.Ledger.Put(domain.ExchangeRecord{
		Key:       r.key.String(),
		Platform:  p.String(),
		Direction: dir,
		Dirs:      dirs,
		Digest:    sum,
		Timestamp: c.now(),
	})
	if err != nil {
		c.Logger.Warn(err.Error())
	}
}

// Status resolves the release key of the working tree and reports which
// platforms have uploaded artifacts for it, along with the transfers this
// host recorded in its ledger. The tree need not be clean.
func (c *Coordinator) Status(ctx context.Context) (*domain.ReleaseStatus, error) {
	version, err := c.Versions.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	commit, err := c.Source.Head(ctx)
	if err != nil {
		return nil, err
	}

	key := domain.ReleaseKey{Project: c.settings.Project, Version: version, Commit: commit}
	status := &domain.ReleaseStatus{
		Key:        key,
		SharedPath: key.SharedPath(c.settings.SharedRoot),
		Present:    make(map[domain.Platform]bool),
		Transfers:  make(map[domain.Platform][]domain.ExchangeRecord),
	}

	for _, p := range domain.Platforms() {
		ok, err := c.Exchange.Has(ctx, status.SharedPath, c.settings.BuildDirs(p))
		if err != nil {
			return nil, zerr.With(err, "platform", p.String())
		}
		status.Present[p] = ok
		status.Transfers[p] = c.transfers(key, p)
	}
	return status, nil
}

// transfers returns the ledger records of p for key, uploads first.
func (c *Coordinator) transfers(key domain.ReleaseKey, p domain.Platform) []domain.ExchangeRecord {
	if c.Ledger == nil {
		return nil
	}

	var out []domain.ExchangeRecord
	for _, dir := range []domain.Direction{domain.DirectionUpload, domain.DirectionDownload} {
		id := domain.ExchangeRecord{Key: key.String(), Platform: p.String(), Direction: dir}.ID()
		rec, err := c.Ledger.Get(id)
		if err != nil {
			c.Logger.Warn(err.Error())
			continue
		}
		if rec != nil {
			out = append(out, *rec)
		}
	}
	return out
}

func (c *Coordinator) stage(ctx context.Context, s domain.Stage, fn func(context.Context, ports.Vertex) error) error {
	ctx, v := c.Telemetry.Record(ctx, string(s))
	err := fn(ctx, v)
	if err != nil {
		v.Log(domain.LogLevelError, err.Error())
	}
	v.Complete(err)
	return err
}

func (c *Coordinator) skip(ctx context.Context, s domain.Stage) {
	_, v := c.Telemetry.Record(ctx, string(s))
	v.Cached()
}

func (c *Coordinator) warn(v ports.Vertex, msg string) {
	c.Logger.Warn(msg)
	v.Log(domain.LogLevelWarn, msg)
}
