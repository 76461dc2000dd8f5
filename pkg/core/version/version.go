// ============================================================================
// jtime - Julian time values and conversion tool
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Module version
	Module = "0.3.0"

	// Component versions
	Temporal = "0.3.0"
	CLI      = "0.3.0"
)

// Set at link time with -ldflags "-X github.com/msto63/jtime/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "temporal":
		return Temporal
	case "cli", "jtime":
		return CLI
	default:
		return Module
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Temporal  string `json:"temporal" yaml:"temporal"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   CLI,
		Temporal:  Temporal,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one line summary
func (i Info) String() string {
	return fmt.Sprintf("jtime %s (temporal %s, commit %s, built %s, %s %s)",
		i.Version, i.Temporal, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
