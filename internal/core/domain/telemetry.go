package domain

import "strings"

// Stage names one step of the release sequence.
type Stage string

const (
	// StagePlatform resolves the host platform.
	StagePlatform Stage = "platform"
	// StageVersionCheck compares manifest and header versions.
	StageVersionCheck Stage = "version check"
	// StageCommitCapture reads HEAD and, in dist mode, checks the tree is clean.
	StageCommitCapture Stage = "commit capture"
	// StageBuild runs the native toolchain.
	StageBuild Stage = "build"
	// StageUpload copies local artifacts to shared storage.
	StageUpload Stage = "upload"
	// StageDownload copies the counterpart's artifacts to local disk.
	StageDownload Stage = "download"
	// StagePublish uploads the package and tags the commit.
	StagePublish Stage = "publish"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// StageState is the last recorded state of a stage.
type StageState int

const (
	// StageRunning means the stage started and never reported completion.
	StageRunning StageState = iota
	// StageDone means the stage finished without error.
	StageDone
	// StageCached means the stage was skipped because its result already existed.
	StageCached
	// StageFailed means the stage returned an error.
	StageFailed
)

func (s StageState) String() string {
	switch s {
	case StageDone:
		return "done"
	case StageCached:
		return "cached"
	case StageFailed:
		return "failed"
	default:
		return "running"
	}
}

// StageReport summarizes one recorded stage and the notes logged on it.
type StageReport struct {
	Name  string
	State StageState
	Notes []string
}

// String renders the report on one line, notes separated by " | ".
func (r StageReport) String() string {
	parts := append([]string{r.Name + ": " + r.State.String()}, r.Notes...)
	return strings.Join(parts, " | ")
}
