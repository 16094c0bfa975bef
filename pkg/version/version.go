// Package version exposes build information injected with -ldflags.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/rshade/widgetlist/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Build-time injected values.
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the build version, falling back to the module version
// recorded by go install.
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}

// String returns the version line printed by --version.
func String() string {
	s := GetVersion()
	if gitCommit != "" {
		s += fmt.Sprintf(" (commit %s", gitCommit)
		if buildDate != "" {
			s += ", built " + buildDate
		}
		s += ")"
	}
	return s
}
