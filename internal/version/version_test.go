package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFromSettings(t *testing.T) {
	tests := []struct {
		name     string
		preset   VersionInfo
		settings []debug.BuildSetting
		want     VersionInfo
	}{
		{
			name: "vcs stamp only",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2026-03-01T10:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: VersionInfo{Commit: "abc123", BuildDate: "2026-03-01", Modified: true},
		},
		{
			name:   "ldflags win",
			preset: VersionInfo{Commit: "release", BuildDate: "2026-01-01"},
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2026-03-01T10:00:00Z"},
			},
			want: VersionInfo{Commit: "release", BuildDate: "2026-01-01"},
		},
		{
			name:     "short time ignored",
			settings: []debug.BuildSetting{{Key: "vcs.time", Value: "2026"}},
			want:     VersionInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.preset
			fillFromSettings(&got, tt.settings)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "zonecraft "+Version) {
		t.Errorf("String() = %q", s)
	}
	if Info().GoVersion == "" {
		t.Error("GoVersion should always be set")
	}
}
