// Package buildinfo carries the version stamp injected with -ldflags -X.
package buildinfo

import "fmt"

// Name is the program name shown in titles and version output.
const Name = "orbs"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for titles and logging.
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

// String returns the full version line, e.g. "orbs v1.2.0 (commit abc123, built 2024-05-01)".
func String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, Version, Commit, Date)
}
