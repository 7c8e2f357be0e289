// Package version reports build information for lcf-validate.
package version

import (
	"runtime"
	"runtime/debug"
	"slices"
)

// version is set at build time with -ldflags "-X .../internal/version.version=v1.2.3".
var version = "dev"

// Version returns the version string, with the short commit appended for
// development builds.
func Version() string {
	if version != "dev" {
		return version
	}
	if _, commit, _ := readBuildInfo(); commit != "" {
		return version + " (" + commit + ")"
	}
	return version
}

// RawVersion returns the semantic version string without any suffix.
func RawVersion() string {
	return version
}

// GoVersion returns the Go toolchain version used for the build.
func GoVersion() string {
	return runtime.Version()
}

// readBuildInfo extracts the main module version, the VCS revision and
// whether the working tree was dirty.
func readBuildInfo() (string, string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}
	var commit string
	var modified bool
	if idx := slices.IndexFunc(info.Settings, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.revision"
	}); idx >= 0 {
		val := info.Settings[idx].Value
		if len(val) > 12 {
			commit = val[:12]
		} else {
			commit = val
		}
	}
	if idx := slices.IndexFunc(info.Settings, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.modified"
	}); idx >= 0 {
		modified = info.Settings[idx].Value == "true"
	}
	return info.Main.Version, commit, modified
}

// Info holds structured version information for machine-readable output.
type Info struct {
	Version       string   `json:"version"`
	ModuleVersion string   `json:"moduleVersion,omitempty"`
	Platform      Platform `json:"platform"`
	GoVersion     string   `json:"goVersion"`
	GitCommit     string   `json:"gitCommit,omitempty"`
	Modified      bool     `json:"modified,omitempty"`
	Rules         int      `json:"rules"`
}

// Platform describes the OS and architecture.
type Platform struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// GetInfo returns structured version information. rules is the number of
// registered rules.
func GetInfo(rules int) Info {
	modVersion, commit, modified := readBuildInfo()
	if modVersion == "(devel)" {
		modVersion = ""
	}
	return Info{
		Version:       RawVersion(),
		ModuleVersion: modVersion,
		Platform: Platform{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
		GoVersion: GoVersion(),
		GitCommit: commit,
		Modified:  modified,
		Rules:     rules,
	}
}
