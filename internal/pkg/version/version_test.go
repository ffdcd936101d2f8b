package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()

	prev := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = prev })
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		in        Info
		buildInfo *debug.BuildInfo
		want      Info
	}{
		{
			name: "ldflags 값이 우선한다",
			in:   Info{Version: "v1.2.0", Commit: "abc", BuildDate: "2026-01-01"},
			buildInfo: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "zzz"},
				{Key: "vcs.time", Value: "2020-01-01"},
			}},
			want: Info{Version: "v1.2.0", Commit: "abc", BuildDate: "2026-01-01"},
		},
		{
			name: "VCS 메타데이터로 보강한다",
			in:   Info{Commit: "none"},
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "deadbeefcafe"},
					{Key: "vcs.time", Value: "2026-10-01T00:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: Info{Version: "v0.3.1", Commit: "deadbeefcafe", BuildDate: "2026-10-01T00:00:00Z", DirtyBuild: true},
		},
		{
			name:      "개발 빌드는 unknown",
			in:        Info{},
			buildInfo: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want:      Info{Version: unknown, Commit: unknown},
		},
		{
			name:      "빌드 정보 없음",
			in:        Info{},
			buildInfo: nil,
			want:      Info{Version: unknown, Commit: unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.buildInfo)

			got := resolve(tt.in)

			tt.want.GoVersion = runtime.Version()
			tt.want.OS = runtime.GOOS
			tt.want.Arch = runtime.GOARCH
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"빈 정보", Info{}, "unknown"},
		{"버전만", Info{Version: "v1.0.0", Commit: unknown}, "v1.0.0"},
		{
			"전체 필드",
			Info{Version: "v1.0.0", Commit: "0123456789", BuildNumber: "7", BuildDate: "2026-10-18", GoVersion: "go1.24.0", OS: "linux", Arch: "amd64", DirtyBuild: true},
			"v1.0.0+dirty (commit: 0123456, build: 7, date: 2026-10-18, go_version: go1.24.0, platform: linux/amd64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestInfo_JSON(t *testing.T) {
	b, err := json.Marshal(Info{Version: "v1", GoVersion: "go1.24.0"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "v1", m["version"])
	assert.Equal(t, "go1.24.0", m["go_version"])
	assert.Len(t, m, len(Info{}.ToMap()))
}

func TestGet_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info := Get()
			assert.NotEmpty(t, info.Version)
			assert.Equal(t, runtime.Version(), info.GoVersion)
		}()
	}
	wg.Wait()
}
