package version

import (
	"fmt"
	"runtime"
)

// Build information. Overridable at build time via -ldflags.
var (
	// BinaryName is the name of the compiled binary
	BinaryName = "oci-datascience-mcp-server"

	// Version is the semantic version of the build
	Version = "dev"

	// GitCommit is the git commit hash of the build
	GitCommit = "unknown"

	// BuildDate is the date the binary was built
	BuildDate = "unknown"

	// GoVersion is the version of Go used to build the binary
	GoVersion = runtime.Version()

	// Platform is the os/arch combination the binary was built for
	Platform = runtime.GOOS + "/" + runtime.GOARCH
)

// GetVersionInfo returns a human-readable version summary
func GetVersionInfo() string {
	return fmt.Sprintf("%s\nVersion: %s\nGit commit: %s\nBuilt: %s\nGo version: %s\nPlatform: %s",
		BinaryName, Version, GitCommit, BuildDate, GoVersion, Platform)
}
