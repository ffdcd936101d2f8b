// Package system 헬스체크와 버전 정보 같은 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"encoding/json"
	"net/http"

	"github.com/darkkaiser/shop-server/internal/config"
	apperrors "github.com/darkkaiser/shop-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-server/internal/pkg/sysinfo"
	"github.com/darkkaiser/shop-server/internal/pkg/version"
	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-server/internal/service/api/metrics"
	"github.com/darkkaiser/shop-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	source sysinfo.Source

	buildInfo version.Info

	// runtimeVersionField 헬스체크 응답에서 런타임 버전을 담을 JSON 키
	runtimeVersionField string

	// metrics 지표 수집이 비활성화된 경우 nil
	metrics *metrics.Metrics
}

// NewHandler Handler 인스턴스를 생성합니다.
// runtimeVersionField가 config.RuntimeVersionFieldRuntime이 아니면 기존 형식(php_version)으로 응답합니다.
func NewHandler(source sysinfo.Source, buildInfo version.Info, runtimeVersionField string, m *metrics.Metrics) *Handler {
	if source == nil {
		panic(constants.PanicMsgSnapshotSourceRequired)
	}

	return &Handler{
		source: source,

		buildInfo: buildInfo,

		runtimeVersionField: runtimeVersionField,

		metrics: m,
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 프로세스가 살아있는지 확인합니다. 의존성 검사는 하지 않으며 항상 200을 반환합니다.
// @Description 런타임 버전 필드의 키는 설정(health.runtime_version_field)에 따라 php_version 또는 runtime_version입니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.LegacyHealthResponse "헬스체크 결과"
// @Router /health [get]
// @Router /health_check.php [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"path":      c.Request().URL.Path,
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	h.metrics.ObserveHealthCheck()

	snap := h.source.Snapshot()

	var resp any = system.LegacyHealthResponse{
		Status:     constants.HealthStatusHealthy,
		Timestamp:  snap.Timestamp,
		Hostname:   snap.Hostname,
		PHPVersion: snap.RuntimeVersion,
	}
	if h.runtimeVersionField == config.RuntimeVersionFieldRuntime {
		resp = system.HealthResponse{
			Status:         constants.HealthStatusHealthy,
			Timestamp:      snap.Timestamp,
			Hostname:       snap.Hostname,
			RuntimeVersion: snap.RuntimeVersion,
		}
	}

	// 모니터링 스크립트가 한 줄 JSON을 기대하므로 디버그 모드의 들여쓰기 출력(c.JSON)을 사용하지 않습니다.
	body, err := json.Marshal(resp)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, constants.LogMsgHealthEncodeErr)
	}

	return c.JSONBlob(http.StatusOK, body)
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"path":      c.Request().URL.Path,
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
	})
}
