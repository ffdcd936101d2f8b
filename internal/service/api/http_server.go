package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-server/internal/service/api/httputil"
	"github.com/darkkaiser/shop-server/internal/service/api/metrics"
	appmiddleware "github.com/darkkaiser/shop-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug echo 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS TLS로 서비스할 때 Strict-Transport-Security 헤더를 추가할지 여부
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 요청 하나의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst 클라이언트 IP별 요청 제한. 스토어프론트와 헬스체크 경로는 제외됩니다.
	RateLimitPerSecond int
	RateLimitBurst     int

	// Metrics nil이 아니면 요청 지표 미들웨어를 등록합니다.
	Metrics *metrics.Metrics
}

// NewHTTPServer 미들웨어 체인이 구성된 echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 이후 모든 미들웨어와 핸들러의 panic을 500 응답으로 변환
//  2. RequestID - X-Request-ID 헤더 부여 (UUID)
//  3. Server 헤더 제거
//  4. HTTPLogger - 접근 로그 (429, 503 응답도 기록되도록 요청 제한보다 앞에 위치)
//  5. RateLimiting - IP별 요청 제한 (공개 경로 제외)
//  6. Metrics - 요청 수와 처리 시간 (활성화된 경우)
//  7. BodyLimit - 요청 본문 크기 제한 (128K, 공개 경로 제외)
//  8. Timeout - 요청 처리 시간 제한
//  9. CORS (공개 경로 제외)
//  10. Secure - 보안 헤더 (TLS 사용 시 HSTS 포함)
//
// 공개 경로(constants.PublicPaths)는 어떤 메서드와 본문으로 호출되어도 핸들러까지 도달해야 합니다.
//
// 클라이언트 IP는 X-Forwarded-For, X-Real-IP 헤더를 신뢰하지 않고 TCP 연결의 원격 주소에서만 가져옵니다.
//
// 라우트는 포함되지 않으며 RegisterRoutes로 별도 등록합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// echo 내부 로그도 애플리케이션 로그 파일로 기록합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler
	e.IPExtractor = echo.ExtractIPDirect()

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimitingWithConfig(appmiddleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitPerSecond,
		Burst:             cfg.RateLimitBurst,
		SkipPaths:         constants.PublicPaths,
	}))
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
	}
	e.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Skipper: skipPublicPaths,
		Limit:   constants.DefaultMaxBodySize,
	}))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgServiceUnavailable,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      skipPublicPaths,
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
	}))

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = constants.DefaultHSTSMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}

// skipPublicPaths 공개 경로 요청이면 true를 반환하는 미들웨어 Skipper입니다.
func skipPublicPaths(c echo.Context) bool {
	return slices.Contains(constants.PublicPaths, c.Request().URL.Path)
}
