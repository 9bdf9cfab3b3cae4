// Package version holds the build information stamped into dialogcoach.
package version

import "fmt"

// Set via -ldflags "-X github.com/tessro/dialogcoach/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns "<version> (commit: <commit>, built: <date>)".
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
