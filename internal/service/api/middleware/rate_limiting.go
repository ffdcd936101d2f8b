package middleware

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// limiterIdleTTL 이 시간 동안 요청이 없던 IP의 버킷은 제거됩니다.
const limiterIdleTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter 클라이언트 IP별 토큰 버킷을 관리합니다.
//
// limiterIdleTTL 동안 요청이 없던 IP의 버킷은 다음 조회 시점에 일괄 제거됩니다.
type ipRateLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	lastCleanup time.Time

	rate  rate.Limit
	burst int

	now func() time.Time
}

func newIPRateLimiter(requestsPerSecond, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		visitors:    make(map[string]*visitor),
		lastCleanup: time.Now(),
		rate:        rate.Limit(requestsPerSecond),
		burst:       burst,
		now:         time.Now,
	}
}

// get ip의 버킷을 반환하며, 없으면 생성합니다.
func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) > limiterIdleTTL {
		l.cleanup(now)
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter
}

// cleanup 호출자가 mu를 잠근 상태여야 합니다.
func (l *ipRateLimiter) cleanup(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(l.visitors, ip)
		}
	}
	l.lastCleanup = now
}

// RateLimitConfig RateLimitingWithConfig의 설정입니다.
type RateLimitConfig struct {
	// RequestsPerSecond IP별 초당 허용 요청 수 (토큰 생성 속도)
	RequestsPerSecond int

	// Burst IP별 순간 최대 허용 요청 수 (버킷 크기)
	Burst int

	// SkipPaths 요청 제한을 적용하지 않을 요청 경로 목록
	SkipPaths []string
}

// RateLimiting 모든 경로에 IP별 요청 제한을 적용합니다.
func RateLimiting(requestsPerSecond, burst int) echo.MiddlewareFunc {
	return RateLimitingWithConfig(RateLimitConfig{
		RequestsPerSecond: requestsPerSecond,
		Burst:             burst,
	})
}

// RateLimitingWithConfig IP별 토큰 버킷으로 요청을 제한하는 미들웨어를 반환합니다.
//
// 한도를 넘은 요청은 Retry-After 헤더와 함께 429 Too Many Requests로 거부됩니다.
// RequestsPerSecond 또는 Burst가 0 이하이면 panic이 발생합니다.
func RateLimitingWithConfig(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.RequestsPerSecond <= 0 || cfg.Burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitInvalid, cfg.RequestsPerSecond, cfg.Burst))
	}

	limiter := newIPRateLimiter(cfg.RequestsPerSecond, cfg.Burst)
	skipPaths := slices.Clone(cfg.SkipPaths)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(skipPaths, c.Request().URL.Path) {
				return next(c)
			}

			// 프록시 헤더의 신뢰 여부는 echo.Echo.IPExtractor 설정을 따릅니다.
			ip := c.RealIP()
			if limiter.get(ip).Allow() {
				return next(c)
			}

			applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
				"remote_ip": ip,
				"path":      c.Request().URL.Path,
				"method":    c.Request().Method,
			}).Warn(constants.LogMsgRateLimitExceeded)

			c.Response().Header().Set(echo.HeaderRetryAfter, constants.RetryAfterSeconds)
			return httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
		}
	}
}
