// Package metrics API 서버의 Prometheus 지표를 수집하고 노출합니다.
//
// 전역 기본 레지스트리 대신 전용 레지스트리를 사용하므로, 여러 인스턴스를 만들어도 서로 간섭하지 않습니다.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/darkkaiser/shop-server/internal/pkg/version"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shop"

// unmatchedRoute 등록된 라우트와 일치하지 않은 요청의 route 레이블 값입니다.
// 요청 경로를 그대로 레이블로 쓰면 레이블 카디널리티가 무한히 늘어날 수 있습니다.
const unmatchedRoute = "unmatched"

// Metrics API 서버의 지표 모음입니다.
//
// 모든 Observe 메서드는 nil 리시버에서도 안전하게 호출할 수 있으므로,
// 지표 수집이 비활성화된 경우 nil을 그대로 전달하면 됩니다.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	storefrontRender prometheus.Counter
	healthChecks     prometheus.Counter
	buildInfo        *prometheus.GaugeVec
}

// New 지표를 생성하고 전용 레지스트리에 등록합니다.
func New(info version.Info) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "처리한 HTTP 요청 수",
		}, []string{"method", "route", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP 요청 처리 시간(초)",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		storefrontRender: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storefront_renders_total",
			Help:      "렌더링한 상점 페이지 수",
		}),

		healthChecks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "health_checks_total",
			Help:      "처리한 헬스체크 요청 수",
		}),

		buildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "실행 중인 바이너리의 빌드 정보 (항상 1)",
		}, []string{"version", "commit", "go_version"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.storefrontRender,
		m.healthChecks,
		m.buildInfo,
	)

	m.buildInfo.WithLabelValues(info.Version, info.Commit, info.GoVersion).Set(1)

	return m
}

// Registry 지표가 등록된 레지스트리를 반환합니다.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHealthCheck() {
	if m == nil {
		return
	}
	m.healthChecks.Inc()
}

func (m *Metrics) ObserveStorefrontRender() {
	if m == nil {
		return
	}
	m.storefrontRender.Inc()
}

// Middleware 요청 수와 처리 시간을 기록하는 echo 미들웨어를 반환합니다.
//
// 핸들러가 에러를 반환한 경우 응답이 아직 기록되지 않았으므로, 상태 코드는 에러에서 결정합니다.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			method := c.Request().Method

			m.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusOf(c, err))).Inc()
			m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// Handler 레지스트리의 지표를 OpenMetrics 형식으로 노출하는 echo 핸들러를 반환합니다.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	}))
}
