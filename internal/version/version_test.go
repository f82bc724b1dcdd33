package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	oldCommit, oldBuild := Commit, BuildTime
	defer func() { Commit, BuildTime = oldCommit, oldBuild }()

	Commit = "0123456789abcdef"
	BuildTime = "2026-01-19T10:00:00Z"

	got := String()
	if !strings.HasPrefix(got, "hiergen dev") {
		t.Errorf("String() = %q, want hiergen prefix", got)
	}
	if !strings.Contains(got, "commit: 0123456,") {
		t.Errorf("String() = %q, want short commit", got)
	}
}

func TestShort(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"unknown", "unknown"},
		{"abc", "abc"},
		{"0123456789", "0123456"},
	}
	for _, tt := range tests {
		if got := short(tt.in); got != tt.want {
			t.Errorf("short(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
