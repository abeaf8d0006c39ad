// Package version reports the build of the running binary
package version

// BuildInfo is served at /meta/version and logged at start
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// stamped with -ldflags "-X gridiron/internal/core/version.version=v0.1.0 -X ...commit=... -X ...date=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the stamped build
func Info() BuildInfo {
	return BuildInfo{Service: "gridiron", Version: version, Commit: commit, Date: date}
}
