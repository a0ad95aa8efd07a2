// Package version holds build information injected with ldflags, e.g.
//
//	-ldflags "-X github.com/jmylchreest/tristim/internal/version.Version=x.y.z
//	          -X github.com/jmylchreest/tristim/internal/version.Commit=$(git rev-parse HEAD)
//	          -X github.com/jmylchreest/tristim/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the full git commit hash.
	Commit = "unknown"
	// Date is the build time in RFC3339.
	Date = "unknown"
)

// Info describes a build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the build information on one line.
func String() string {
	info := Get()
	if info.Commit == "unknown" || info.Date == "unknown" {
		return fmt.Sprintf("tristim %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	commit := info.Commit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	return fmt.Sprintf("tristim %s (commit %s, built %s, %s, %s)",
		info.Version, commit, info.Date, info.GoVersion, info.Platform)
}

// Short returns the bare version.
func Short() string {
	return Version
}
