package constants

import "time"

// HTTP 서버 기본값입니다.
const (
	DefaultReadTimeout       = 30 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultRequestTimeout 요청 하나의 최대 처리 시간
	DefaultRequestTimeout = 60 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기
	DefaultMaxBodySize = "128K"

	// DefaultHSTSMaxAge TLS 사용 시 Strict-Transport-Security max-age (1년)
	DefaultHSTSMaxAge = 31536000

	// RetryAfterSeconds 요청 제한 초과 시 Retry-After 헤더 값
	RetryAfterSeconds = "1"
)

// HealthStatusHealthy 헬스체크 응답의 status 값입니다. 의존성 검사가 없으므로 항상 이 값입니다.
const HealthStatusHealthy = "healthy"

// SensitiveQueryParams 접근 로그에 기록할 때 값을 가려야 하는 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
