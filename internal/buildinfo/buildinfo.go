// Package buildinfo holds version information injected at build time via
// ldflags, e.g. -X github.com/watchfire-io/dbot/internal/buildinfo.Version=1.2.0.
package buildinfo

import "fmt"

var (
	Version    = "dev"
	Codename   = "unknown"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Short returns the version and codename on one line.
func Short() string {
	return fmt.Sprintf("%s (%s)", Version, Codename)
}

// IsRelease reports whether the binary was built with a version stamp.
func IsRelease() bool {
	return Version != "dev"
}
