package api

import (
	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-server/internal/service/api/handler/storefront"
	"github.com/darkkaiser/shop-server/internal/service/api/handler/system"
	"github.com/darkkaiser/shop-server/internal/service/api/metrics"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouteOptions 설정에 따라 켜고 끄는 부가 엔드포인트입니다.
type RouteOptions struct {
	EnableVersion bool
	EnableSwagger bool

	// Metrics nil이 아니면 /metrics 엔드포인트를 등록합니다.
	Metrics *metrics.Metrics
}

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
// 스토어프론트와 헬스체크는 항상 등록되며 모든 HTTP 메서드에 응답합니다.
// 기존 배포 환경의 URL(/index.php, /health_check.php)도 같은 핸들러로 연결됩니다.
func RegisterRoutes(e *echo.Echo, sh *system.Handler, fh *storefront.Handler, opts RouteOptions) {
	e.Any(constants.PathStorefront, fh.PageHandler)
	e.Any(constants.PathStorefrontLegacy, fh.PageHandler)

	e.Any(constants.PathHealth, sh.HealthCheckHandler)
	e.Any(constants.PathHealthLegacy, sh.HealthCheckHandler)

	if opts.EnableVersion {
		e.GET(constants.PathVersion, sh.VersionHandler)
	}
	if opts.Metrics != nil {
		e.GET(constants.PathMetrics, opts.Metrics.Handler())
	}
	if opts.EnableSwagger {
		registerSwaggerRoutes(e)
	}
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET(constants.PathSwagger, echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
