package domain

import "fmt"

// Version is the three-part version embedded in the native header.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String renders the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tag returns the annotated tag name for the version.
func (v Version) Tag() string {
	return "v" + v.String()
}

// Commit is a source control revision hash.
type Commit string

// String returns the hash.
func (c Commit) String() string {
	return string(c)
}

// Short returns the first eight characters of the hash.
func (c Commit) Short() string {
	if len(c) <= 8 {
		return string(c)
	}
	return string(c[:8])
}
