package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestResolveFallsBackToBuildInfo(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}, true)

	v, c, d := Resolve()
	if v != "v0.3.1" || c != "abc123" || d != "2026-01-02T03:04:05Z" {
		t.Errorf("Resolve() = %q, %q, %q", v, c, d)
	}
}

func TestResolvePrefersLdflags(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	}, true)

	oldV, oldC := Version, Commit
	Version, Commit = "v9.9.9", "fff"
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	v, c, _ := Resolve()
	if v != "v9.9.9" || c != "fff" {
		t.Errorf("Resolve() = %q, %q, want ldflags values", v, c)
	}
}

func TestResolveWithoutBuildInfo(t *testing.T) {
	stubBuildInfo(t, nil, false)

	if v, c, d := Resolve(); v != Version || c != Commit || d != Date {
		t.Errorf("Resolve() = %q, %q, %q, want package defaults", v, c, d)
	}
}

func TestTemplate(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true)

	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version dev\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(String(), "commit: none") {
		t.Errorf("String() = %q", String())
	}
}
