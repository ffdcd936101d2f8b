package log

import (
	"fmt"
	"os"
)

// Options 로거 설정입니다.
type Options struct {
	Name  string // 로그 파일명에 사용될 애플리케이션 식별자
	Dir   string // 로그 파일 디렉토리 (빈 값이면 "logs")
	Level Level  // 최소 로그 레벨 (0이면 Info)

	MaxAge     int // 로테이션된 파일 보관 일수 (0: 삭제 안 함)
	MaxSizeMB  int // 파일 하나의 최대 크기 (0: 100MB)
	MaxBackups int // 보관할 백업 파일 수 (0: 20개)

	EnableCriticalLog bool // ERROR 이상 로그를 별도 파일(<name>.critical.log)로 분리
	EnableVerboseLog  bool // DEBUG 이하 로그를 별도 파일(<name>.verbose.log)로 분리
	EnableConsoleLog  bool // 모든 로그를 표준 출력에도 기록

	// ReportCaller 로그에 호출 위치(함수명, 라인)를 기록합니다.
	ReportCaller bool

	// CallerPathPrefix 호출 위치에서 잘라낼 패키지 경로 접두사입니다.
	// 예: "github.com/darkkaiser/shop-server" -> ".../internal/service/api.(*Service).Start(line:42)"
	CallerPathPrefix string
}

// Validate Options의 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}
