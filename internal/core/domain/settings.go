package domain

import "time"

const (
	// ProjectFileName is the tracked project configuration file.
	ProjectFileName = "ferry.yaml"
	// LocalFileName is the untracked per-machine settings file.
	LocalFileName = "ferry.local.yaml"
	// DefaultStatePath is where the exchange ledger is kept, relative to the project root.
	DefaultStatePath = ".ferry/state.json"
	// DefaultSettleDelay is the pause between commit resolution and the build phase.
	DefaultSettleDelay = time.Second
)

// Settings is the resolved configuration for a release run.
type Settings struct {
	// Root is the absolute project root. Every relative path below resolves against it.
	Root string
	// SharedRoot is the network folder both platform runs can reach.
	SharedRoot string

	Project      string
	Manifest     string
	Header       string
	HeaderPrefix string
	StatePath    string
	SettleDelay  time.Duration
	Publish      []string

	Darwin  DarwinToolchain
	Windows WindowsToolchain
}

// DarwinToolchain describes the xcodebuild invocations.
type DarwinToolchain struct {
	ProjectDir string
	Schemes    []string
	BuildDirs  BuildDirSet
}

// WindowsToolchain describes the MSBuild invocations.
type WindowsToolchain struct {
	MSBuild    string
	ProjectDir string
	Solution   string
	Platforms  []string
	BuildDirs  BuildDirSet
}

// DefaultSettings returns the layout of the native library repository.
// SharedRoot is left empty because it only comes from the local settings file.
func DefaultSettings(root string) *Settings {
	return &Settings{
		Root:         root,
		Project:      "bacon",
		Manifest:     "setup.py",
		Header:       "native/Source/Bacon/Bacon.h",
		HeaderPrefix: "BACON",
		StatePath:    DefaultStatePath,
		SettleDelay:  DefaultSettleDelay,
		Publish:      []string{"python", "setup.py", "sdist", "--formats=zip", "upload"},
		Darwin: DarwinToolchain{
			ProjectDir: "native/Projects/Xcode",
			Schemes:    []string{"Bacon", "Bacon64"},
			BuildDirs:  BuildDirSet{"bacon/darwin32", "bacon/darwin64"},
		},
		Windows: WindowsToolchain{
			MSBuild:    `C:\Windows\Microsoft.NET\Framework\v4.0.30319\MSBuild.exe`,
			ProjectDir: "native/Projects/VisualStudio",
			Solution:   "Bacon.sln",
			Platforms:  []string{"Win32", "x64"},
			BuildDirs:  BuildDirSet{"bacon/windows32", "bacon/windows64"},
		},
	}
}

// BuildDirs returns the build directory set of the given platform.
func (s *Settings) BuildDirs(p Platform) BuildDirSet {
	switch p {
	case PlatformDarwin:
		return s.Darwin.BuildDirs
	case PlatformWindows:
		return s.Windows.BuildDirs
	default:
		return nil
	}
}

// ConfigFiles overrides the configuration file locations. Empty fields select the defaults.
type ConfigFiles struct {
	Project string
	Local   string
}
