// Package buildinfo holds version information stamped in at build time.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/George-Ogden/dbg/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/George-Ogden/dbg/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/George-Ogden/dbg/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/dbg
package buildinfo

import "fmt"

var (
	// Version is the release tag, or "dev" for local builds. The file cache
	// is scoped by it so a new release never reads old output.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}
