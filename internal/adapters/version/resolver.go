// Package version resolves the release version from the package manifest and the native header.
package version

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionResolver = (*Resolver)(nil)

// manifestVersionRegexp matches `version = '1.2.3'` in a setup script.
var manifestVersionRegexp = regexp.MustCompile(`(?m)^\s*version\s*=\s*['"]([^'"]+)['"]`)

// Resolver implements ports.VersionResolver.
type Resolver struct {
	manifest string
	header   string
	prefix   string
}

// NewResolver creates a Resolver reading manifest and header, both relative to root unless absolute.
func NewResolver(root, manifest, header, prefix string) *Resolver {
	return &Resolver{
		manifest: join(root, manifest),
		header:   join(root, header),
		prefix:   prefix,
	}
}

// NewResolverFromSettings creates a Resolver for the configured project layout.
func NewResolverFromSettings(s *domain.Settings) *Resolver {
	return NewResolver(s.Root, s.Manifest, s.Header, s.HeaderPrefix)
}

// Resolve returns the version both sources agree on.
func (r *Resolver) Resolve(_ context.Context) (domain.Version, error) {
	declared, err := r.DeclaredVersion()
	if err != nil {
		return domain.Version{}, err
	}

	native, err := r.NativeVersion()
	if err != nil {
		return domain.Version{}, err
	}

	if declared != native.String() {
		err := zerr.Wrap(domain.ErrVersionMismatch, fmt.Sprintf("%s vs %s", native, declared))
		err = zerr.With(err, "declared", declared)
		return domain.Version{}, zerr.With(err, "native", native.String())
	}

	return native, nil
}

// DeclaredVersion reads the version string from the package manifest.
func (r *Resolver) DeclaredVersion() (string, error) {
	src, err := os.ReadFile(r.manifest)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read package manifest"), "path", r.manifest)
	}

	m := manifestVersionRegexp.FindSubmatch(src)
	if m == nil {
		return "", zerr.With(zerr.Wrap(domain.ErrManifestVersionMissing, r.manifest), "path", r.manifest)
	}
	return string(m[1]), nil
}

// NativeVersion parses the three version defines from the native header.
func (r *Resolver) NativeVersion() (domain.Version, error) {
	src, err := os.ReadFile(r.header)
	if err != nil {
		return domain.Version{}, zerr.With(zerr.Wrap(err, "failed to read native header"), "path", r.header)
	}

	var v domain.Version
	fields := []struct {
		name string
		dst  *int
	}{
		{"MAJOR", &v.Major},
		{"MINOR", &v.Minor},
		{"PATCH", &v.Patch},
	}

	for _, f := range fields {
		marker := r.prefix + "_VERSION_" + f.name
		n, err := defineValue(src, marker)
		if err != nil {
			return domain.Version{}, zerr.With(err, "path", r.header)
		}
		*f.dst = n
	}

	return v, nil
}

// defineValue returns the value of the last "#define marker N" in src.
// Name and value must sit on the same line as the directive.
func defineValue(src []byte, marker string) (int, error) {
	re := regexp.MustCompile(`#define[ \t]+` + regexp.QuoteMeta(marker) + `[ \t]+([0-9]+)\b`)
	all := re.FindAllSubmatch(src, -1)
	if len(all) == 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrVersionMarkerMissing, marker), "marker", marker)
	}
	m := all[len(all)-1]

	n, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "invalid version number"), "marker", marker)
	}
	return n, nil
}

func join(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
