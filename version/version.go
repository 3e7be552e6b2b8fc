// Package version holds build metadata injected at link time.
package version

// Set via -ldflags at build time:
//
//	go build -ldflags "-X github.com/mendelk/sofer/version.GitRelease=v0.3.0"
var (
	GitRelease = "dev"
	GitCommit  = ""
)
