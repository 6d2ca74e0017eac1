package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigurationMissing is returned when the local settings file or its shared storage root is absent.
	ErrConfigurationMissing = zerr.New("shared storage configuration missing")

	// ErrConfigReadFailed is returned when a configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidMode is returned when the build mode is neither development nor dist.
	ErrInvalidMode = zerr.New("invalid mode, expected 'development' or 'dist'")

	// ErrVersionMismatch is returned when the manifest version and the native header version disagree.
	ErrVersionMismatch = zerr.New("native version does not match package manifest")

	// ErrManifestVersionMissing is returned when the package manifest declares no version.
	ErrManifestVersionMissing = zerr.New("package manifest declares no version")

	// ErrVersionMarkerMissing is returned when a version define cannot be found in the native header.
	ErrVersionMarkerMissing = zerr.New("version marker not found in native header")

	// ErrDirtyRepository is returned in dist mode when the working tree has uncommitted changes.
	ErrDirtyRepository = zerr.New("git repo is dirty")

	// ErrCommitUnavailable is returned when the HEAD commit hash cannot be determined.
	ErrCommitUnavailable = zerr.New("failed to determine HEAD commit")

	// ErrUnsupportedPlatform is returned when the host operating system has no native toolchain procedure.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCopyFailed is returned when a build artifact cannot be copied.
	ErrCopyFailed = zerr.New("failed to copy build artifact")

	// ErrDigestFailed is returned when a build directory cannot be hashed.
	ErrDigestFailed = zerr.New("failed to compute build directory digest")

	// ErrLedgerReadFailed is returned when the exchange ledger cannot be read.
	ErrLedgerReadFailed = zerr.New("failed to read exchange ledger")

	// ErrLedgerWriteFailed is returned when the exchange ledger cannot be written.
	ErrLedgerWriteFailed = zerr.New("failed to write exchange ledger")
)
