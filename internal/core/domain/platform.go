package domain

import "go.trai.ch/zerr"

// Platform is one of the two operating systems the native library is built on.
type Platform int

const (
	// PlatformDarwin builds with xcodebuild.
	PlatformDarwin Platform = iota + 1
	// PlatformWindows builds with MSBuild.
	PlatformWindows
)

// ParsePlatform maps a GOOS value onto a Platform.
func ParsePlatform(goos string) (Platform, error) {
	switch goos {
	case "darwin":
		return PlatformDarwin, nil
	case "windows":
		return PlatformWindows, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnsupportedPlatform, "platform "+goos), "platform", goos)
	}
}

// Counterpart returns the platform whose artifacts complete a release.
func (p Platform) Counterpart() Platform {
	switch p {
	case PlatformDarwin:
		return PlatformWindows
	case PlatformWindows:
		return PlatformDarwin
	default:
		return 0
	}
}

// String returns the GOOS spelling of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformDarwin:
		return "darwin"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// Platforms lists every supported platform in a stable order.
func Platforms() []Platform {
	return []Platform{PlatformDarwin, PlatformWindows}
}
