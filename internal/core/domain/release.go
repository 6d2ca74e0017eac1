package domain

import (
	"path/filepath"
	"time"
)

// ReleaseKey identifies one release attempt across both platform runs.
type ReleaseKey struct {
	Project string
	Version Version
	Commit  Commit
}

// SharedPath returns the directory under root where both platform runs exchange artifacts.
// Any two runs with the same key resolve to the same path.
func (k ReleaseKey) SharedPath(root string) string {
	return filepath.Join(root, k.Project+"-"+k.Version.String(), k.Commit.String())
}

// String returns a compact identifier used as the ledger key.
func (k ReleaseKey) String() string {
	return k.Project + "-" + k.Version.String() + "@" + k.Commit.String()
}

// BuildDirSet is the ordered list of output directories a platform's toolchain produces,
// relative to the project root.
type BuildDirSet []string

// Outcome is the terminal state of a release run.
type Outcome int

const (
	// OutcomeAwaitingCounterpart means the other platform has not uploaded yet. It is a normal termination.
	OutcomeAwaitingCounterpart Outcome = iota + 1
	// OutcomeExchanged means both platforms' artifacts are present locally and nothing was published.
	OutcomeExchanged
	// OutcomePublished means the package was published and the commit tagged.
	OutcomePublished
)

// String returns a human readable outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAwaitingCounterpart:
		return "awaiting counterpart"
	case OutcomeExchanged:
		return "exchanged"
	case OutcomePublished:
		return "published"
	default:
		return "unknown"
	}
}

// Direction describes which way an exchange moved artifacts.
type Direction string

const (
	// DirectionUpload copies local artifacts to shared storage.
	DirectionUpload Direction = "upload"
	// DirectionDownload copies counterpart artifacts to local disk.
	DirectionDownload Direction = "download"
)

// ExchangeRecord describes one completed transfer of build directories.
type ExchangeRecord struct {
	Key       string    `json:"key,omitzero"`
	Platform  string    `json:"platform,omitzero"`
	Direction Direction `json:"direction,omitzero"`
	Dirs      []string  `json:"dirs,omitzero"`
	Digest    string    `json:"digest,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// ID returns the ledger slot for the record. Later transfers of the same slot replace earlier ones.
func (r ExchangeRecord) ID() string {
	return r.Key + "/" + r.Platform + "/" + string(r.Direction)
}

// ReleaseStatus reports which platforms have uploaded artifacts for a release key.
type ReleaseStatus struct {
	Key        ReleaseKey
	SharedPath string
	Present    map[Platform]bool
	// Transfers holds the ledger records this host wrote for each platform.
	Transfers map[Platform][]ExchangeRecord
}

// Complete reports whether every platform's artifacts are present.
func (s ReleaseStatus) Complete() bool {
	for _, p := range Platforms() {
		if !s.Present[p] {
			return false
		}
	}
	return true
}
