// Package sysinfo 요청 시점의 실행 환경 정보(호스트명, 런타임 버전, 현재 시각)를 수집합니다.
//
// 헬스체크 응답과 스토어프론트 페이지는 같은 Snapshot에서 값을 가져오므로
// 두 화면이 보여주는 호스트명과 런타임 버전은 항상 일치합니다.
package sysinfo

import (
	"os"
	"runtime"
	"time"

	apperrors "github.com/darkkaiser/shop-server/internal/pkg/errors"
	applog "github.com/darkkaiser/shop-server/pkg/log"
)

const (
	// TimestampLayout 스냅샷 시각의 출력 형식입니다. (YYYY-MM-DD HH:MM:SS)
	TimestampLayout = "2006-01-02 15:04:05"

	// UnknownHostname 운영체제에서 호스트명을 얻지 못했을 때 사용하는 값입니다.
	UnknownHostname = "unknown"

	component = "sysinfo"
)

// Snapshot 한 요청 시점의 실행 환경 정보입니다. 저장하지 않고 요청마다 새로 만듭니다.
type Snapshot struct {
	Hostname       string
	RuntimeVersion string
	Timestamp      string
}

// Source Snapshot을 제공하는 인터페이스입니다.
// 핸들러는 이 인터페이스에 의존하므로 테스트에서 고정된 값을 주입할 수 있습니다.
type Source interface {
	Snapshot() Snapshot
}

// Provider 운영체제와 시계에서 Snapshot을 생성하는 Source 구현체입니다. 여러 고루틴에서 동시에 사용해도 안전합니다.
type Provider struct {
	location *time.Location

	now      func() time.Time
	hostname func() (string, error)
}

// NewProvider 지정된 시간대로 시각을 표시하는 Provider를 생성합니다.
// loc가 nil이면 프로세스의 로컬 시간대(time.Local)를 사용합니다.
func NewProvider(loc *time.Location) *Provider {
	if loc == nil {
		loc = time.Local
	}

	return &Provider{
		location: loc,
		now:      time.Now,
		hostname: os.Hostname,
	}
}

// Snapshot 현재 시점의 실행 환경 정보를 수집합니다.
//
// 호스트명과 런타임 버전은 캐싱하지 않고 매번 다시 읽습니다.
// 호스트명 조회에 실패하면 경고 로그를 남기고 UnknownHostname을 사용하므로 실패하지 않습니다.
func (p *Provider) Snapshot() Snapshot {
	host, err := p.hostname()
	if err != nil || host == "" {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("호스트명 조회 실패: 기본값(unknown)을 사용합니다")

		host = UnknownHostname
	}

	return Snapshot{
		Hostname:       host,
		RuntimeVersion: runtime.Version(),
		Timestamp:      p.now().In(p.location).Format(TimestampLayout),
	}
}

// LoadLocation IANA 시간대 이름으로 *time.Location을 반환합니다.
// 빈 문자열이면 nil을 반환하며, 이 경우 프로세스의 로컬 시간대가 사용됩니다.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return nil, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "알 수 없는 시간대입니다: %s", name)
	}
	return loc, nil
}
