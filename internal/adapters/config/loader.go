// Package config provides the configuration loader for ferry.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger      ports.Logger
	ProjectFile string
	LocalFile   string
}

// NewLoader creates a new Loader reading the default file names.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:      logger,
		ProjectFile: domain.ProjectFileName,
		LocalFile:   domain.LocalFileName,
	}
}

// Load reads the local settings file first so that a missing shared root is reported
// before anything else, then applies the project file on top of the defaults.
func (l *Loader) Load(cwd string, files domain.ConfigFiles) (*domain.Settings, error) {
	root, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "cwd", cwd)
	}

	localFile, projectFile := l.LocalFile, l.ProjectFile
	setString(&localFile, files.Local)
	setString(&projectFile, files.Project)

	local, err := l.loadLocal(root, localFile)
	if err != nil {
		return nil, err
	}

	settings := domain.DefaultSettings(root)
	settings.SharedRoot = resolve(root, local.SharedRoot)

	if err := l.applyProject(root, projectFile, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (l *Loader) loadLocal(root, file string) (*Localfile, error) {
	path := resolve(root, file)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigurationMissing, path+" must be provided with shared_root"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var local Localfile
	if err := yaml.Unmarshal(data, &local); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if local.SharedRoot == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigurationMissing, "shared_root is empty"), "path", path)
	}

	return &local, nil
}

func (l *Loader) applyProject(root, file string, s *domain.Settings) error {
	path := resolve(root, file)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if l.Logger != nil {
				l.Logger.Info("no " + file + " found, using default layout")
			}
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var pf Projectfile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	setString(&s.Project, pf.Project)
	setString(&s.Manifest, pf.Manifest)
	setString(&s.Header, pf.Header)
	setString(&s.HeaderPrefix, pf.HeaderPrefix)
	setString(&s.StatePath, pf.State)
	setStrings(&s.Publish, pf.Publish)

	if pf.SettleDelay != nil {
		delay, err := time.ParseDuration(*pf.SettleDelay)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid settle_delay"), "value", *pf.SettleDelay)
		}
		s.SettleDelay = delay
	}

	if d := pf.Darwin; d != nil {
		setString(&s.Darwin.ProjectDir, d.ProjectDir)
		setStrings(&s.Darwin.Schemes, d.Schemes)
		setStrings((*[]string)(&s.Darwin.BuildDirs), d.BuildDirs)
	}

	if w := pf.Windows; w != nil {
		setString(&s.Windows.MSBuild, w.MSBuild)
		setString(&s.Windows.ProjectDir, w.ProjectDir)
		setString(&s.Windows.Solution, w.Solution)
		setStrings(&s.Windows.Platforms, w.Platforms)
		setStrings((*[]string)(&s.Windows.BuildDirs), w.BuildDirs)
	}

	return nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setStrings(dst *[]string, v []string) {
	if len(v) > 0 {
		*dst = v
	}
}
