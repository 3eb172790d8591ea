// Package version reports the build version of the gymflow binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is overridden at build time with -ldflags "-X .../version.Current=v1.2.3".
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether version is a valid semver release (no prerelease suffix).
func IsRelease(version string) bool {
	v := Normalize(version)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

// String returns Current in canonical form, or "dev" for local builds.
func String() string {
	v := Normalize(Current)
	if !semver.IsValid(v) {
		return "dev"
	}
	return semver.Canonical(v)
}
