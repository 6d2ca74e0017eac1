package domain

import "go.trai.ch/zerr"

// Mode selects the release pathway for a run. It is fixed for the lifetime of the run.
type Mode string

const (
	// ModeDevelopment always rebuilds locally and never publishes or tags.
	ModeDevelopment Mode = "development"
	// ModeDist requires a clean tree and publishes once both platforms are exchanged.
	ModeDist Mode = "dist"
)

// ParseMode converts a flag value into a Mode. An empty value selects development.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeDevelopment:
		return ModeDevelopment, nil
	case ModeDist:
		return ModeDist, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidMode, "mode "+s), "mode", s)
	}
}

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	return string(m)
}

// IsDist reports whether the mode is the strict release pathway.
func (m Mode) IsDist() bool {
	return m == ModeDist
}
