// Package build provides version and build information for chag.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Info returns the multi-line build report printed by `chag version`.
func Info() string {
	version := Version
	if IsDevBuild() {
		version += " (development build)"
	}
	return fmt.Sprintf("chag %s\ncommit: %s\nbuilt: %s\ngo: %s\nplatform: %s/%s\n",
		version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
