// Package buildinfo carries version metadata injected at build time via
// -ldflags.
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// String returns a human-readable version string.
func String() string {
	if Version == "" {
		Version = "dev"
	}
	info := fmt.Sprintf("fleetcli %s", Version)
	if GitCommit != "" {
		info = fmt.Sprintf("%s (%s)", info, GitCommit)
	}
	if BuildTime != "" {
		info = fmt.Sprintf("%s built at %s", info, BuildTime)
	}
	return info
}

// PrintBuildData writes the version line to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintln(w, String())
}
