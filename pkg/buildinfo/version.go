// Package buildinfo holds the version stamped into a build.
//
// Variables are set via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/wordnet/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/wordnet/pkg/buildinfo.Commit=$(git rev-parse HEAD)"
//
// The metrics package exports both as labels of a build_info gauge.
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"
)

// String returns the version and commit on one line.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
