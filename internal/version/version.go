// Package version reports build metadata for /version and the CLI tools.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set through -ldflags "-X zonecraft/internal/version.Version=...".
var (
	Version     = "dev"
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// VersionInfo describes the build in structured form.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"goVersion"`
}

// Info merges the ldflags values with the VCS stamp the toolchain embeds.
// ldflags win when both are present.
func Info() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromSettings(&info, bi.Settings)
	}
	return info
}

func fillFromSettings(info *VersionInfo, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "" && len(s.Value) >= 10 {
				info.BuildDate = s.Value[:10]
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// String returns a one-line build description.
func String() string {
	info := Info()
	commit := info.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	s := fmt.Sprintf("zonecraft %s (%s) commit[%s] %s",
		info.Version,
		coalesce(info.BuildDate, "unknown"),
		coalesce(commit, "unknown"),
		info.GoVersion,
	)
	if info.Modified {
		s += " dirty"
	}
	return s
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
