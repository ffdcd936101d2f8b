// Package version shop-server 바이너리의 빌드 정보를 제공합니다.
//
// 버전, 커밋, 빌드 날짜, 빌드 번호는 빌드 시점에 -ldflags로 주입합니다:
//
//	go build -ldflags "-X github.com/darkkaiser/shop-server/internal/pkg/version.appVersion=v1.2.0"
//
// 주입되지 않은 값은 실행 파일에 기록된 VCS 메타데이터(debug.ReadBuildInfo)로 보강합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

const unknown = "unknown"

// -ldflags 주입 대상입니다. 직접 읽지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
	buildNumber   = ""
)

var (
	current atomic.Pointer[Info]

	// readBuildInfo 테스트에서 교체할 수 있도록 변수로 둡니다.
	readBuildInfo = debug.ReadBuildInfo
)

func init() {
	info := resolve(Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	})
	current.Store(&info)
}

// Info 빌드 메타데이터입니다. /version 응답과 시작 로그, shop_build_info 메트릭에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 프로세스의 빌드 정보를 반환합니다.
func Get() Info {
	if p := current.Load(); p != nil {
		return *p
	}
	return Info{Version: unknown, Commit: unknown, BuildDate: unknown, BuildNumber: "0"}
}

// resolve 비어 있는 필드를 런타임 정보와 VCS 메타데이터로 채웁니다.
func resolve(info Info) Info {
	if info.GoVersion == "" {
		info.GoVersion = runtime.Version()
	}
	if info.OS == "" {
		info.OS = runtime.GOOS
	}
	if info.Arch == "" {
		info.Arch = runtime.GOARCH
	}

	if bi, ok := readBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if isBlank(info.Commit) {
					info.Commit = s.Value
				}
			case "vcs.time":
				if isBlank(info.BuildDate) {
					info.BuildDate = s.Value
				}
			case "vcs.modified":
				info.DirtyBuild = info.DirtyBuild || s.Value == "true"
			}
		}

		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	if info.Version == "" {
		info.Version = unknown
	}
	if isBlank(info.Commit) {
		info.Commit = unknown
	}

	return info
}

func isBlank(s string) bool {
	return s == "" || s == unknown || s == "none"
}

// ToMap 구조화 로깅용 필드 맵을 반환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String "v1.2.0+dirty (commit: abcdef1, build: 12, ...)" 형태의 요약 문자열을 반환합니다.
func (i Info) String() string {
	if i.Version == "" {
		return unknown
	}

	v := i.Version
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	if !isBlank(i.Commit) {
		c := i.Commit
		if len(c) > 7 {
			c = c[:7]
		}
		details = append(details, "commit: "+c)
	}
	if i.BuildNumber != "" {
		details = append(details, "build: "+i.BuildNumber)
	}
	if !isBlank(i.BuildDate) {
		details = append(details, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		details = append(details, "go_version: "+i.GoVersion)
	}
	if i.OS != "" && i.Arch != "" {
		details = append(details, fmt.Sprintf("platform: %s/%s", i.OS, i.Arch))
	}

	if len(details) == 0 {
		return v
	}
	return v + " (" + strings.Join(details, ", ") + ")"
}
