package version

import "regexp"

// Version is set from main.go at startup via ldflags.
var Version = "dev"

var semverRe = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)$`)

// String returns the version for display. Release versions (clean
// semver) get a normalized "v" prefix; everything else is passed
// through as-is.
func String() string {
	m := semverRe.FindStringSubmatch(Version)
	if m == nil {
		return Version
	}
	return "v" + m[1]
}
