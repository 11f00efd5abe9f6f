package visversion

import "fmt"

// Version is the ordered, enumerated VIS version tag (spec §3). Ordering
// is total and "latest" is the maximum defined value.
type Version int

const (
	VersionUnknown Version = iota
	Version3_4a
	Version3_5a
	Version3_6a
	Version3_7a
	Version3_8a
	Version3_9a
)

var versionStrings = map[Version]string{
	Version3_4a: "3-4a",
	Version3_5a: "3-5a",
	Version3_6a: "3-6a",
	Version3_7a: "3-7a",
	Version3_8a: "3-8a",
	Version3_9a: "3-9a",
}

var stringVersions = func() map[string]Version {
	m := make(map[string]Version, len(versionStrings))
	for v, s := range versionStrings {
		m[s] = v
	}
	return m
}()

// allVersions is the total order of versions, oldest first.
var allVersions = []Version{
	Version3_4a, Version3_5a, Version3_6a, Version3_7a, Version3_8a, Version3_9a,
}

// String renders the version as its canonical "x-ya" tag.
func (v Version) String() string {
	if s, ok := versionStrings[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid reports whether v is one of the defined versions.
func (v Version) IsValid() bool {
	_, ok := versionStrings[v]
	return ok
}

// ParseVersion parses a canonical "x-ya" tag, e.g. "3-6a".
func ParseVersion(s string) (Version, bool) {
	v, ok := stringVersions[s]
	return v, ok
}

// LatestVersion returns the maximum defined VIS version.
func LatestVersion() Version {
	return allVersions[len(allVersions)-1]
}

// AllVersions returns every defined version, oldest first.
func AllVersions() []Version {
	out := make([]Version, len(allVersions))
	copy(out, allVersions)
	return out
}

// Next returns the version immediately after v in the total order, and
// false if v is the latest or unknown.
func (v Version) Next() (Version, bool) {
	for i, candidate := range allVersions {
		if candidate == v && i+1 < len(allVersions) {
			return allVersions[i+1], true
		}
	}
	return VersionUnknown, false
}

// Before reports whether v sorts strictly before other.
func (v Version) Before(other Version) bool {
	return int(v) < int(other)
}

// MustParseVersion parses s and panics if it is not a known VIS version.
// Intended for constants in test code, not for handling user input.
func MustParseVersion(s string) Version {
	v, ok := ParseVersion(s)
	if !ok {
		panic(fmt.Sprintf("vis: unknown VIS version %q", s))
	}
	return v
}
