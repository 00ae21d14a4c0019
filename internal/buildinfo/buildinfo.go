package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 12 {
			return Commit[:12]
		}
		return Commit
	}
	return "dev"
}

// String returns the full stamp, e.g. "v0.3.0 (abc123, 2026-01-02)".
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}
