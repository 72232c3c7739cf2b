// Package version holds build metadata injected with -ldflags.
package version

var (
	// Version is the release version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
