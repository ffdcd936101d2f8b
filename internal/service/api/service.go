// Package api 스토어프론트 페이지와 헬스체크를 제공하는 HTTP 서비스를 구현합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/shop-server/docs"
	"github.com/darkkaiser/shop-server/internal/config"
	"github.com/darkkaiser/shop-server/internal/pkg/sysinfo"
	"github.com/darkkaiser/shop-server/internal/pkg/version"
	"github.com/darkkaiser/shop-server/internal/service"
	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-server/internal/service/api/handler/storefront"
	"github.com/darkkaiser/shop-server/internal/service/api/handler/system"
	"github.com/darkkaiser/shop-server/internal/service/api/metrics"
	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/labstack/echo/v4"
)

var _ service.Service = (*Service)(nil)

// Service API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start()로 시작하면 HTTP 서버가 고루틴에서 실행되고, serviceStopCtx가 취소되면
// 최대 5초 동안 처리 중인 요청을 기다린 뒤 종료합니다.
type Service struct {
	appConfig *config.AppConfig

	source sysinfo.Source

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, source sysinfo.Source, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if source == nil {
		panic(constants.PanicMsgSnapshotSourceRequired)
	}

	return &Service{
		appConfig: appConfig,

		source: source,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다. 이 함수는 즉시 반환되며 서버는 고루틴에서 실행됩니다.
//
// 호출자는 Start 전에 serviceStopWG.Add(1)을 해야 합니다.
// 이미 실행 중이면 경고만 남기고 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러, 미들웨어 체인, 라우트가 구성된 echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	httpCfg := s.appConfig.HTTPServer

	var m *metrics.Metrics
	if httpCfg.EnableMetrics {
		m = metrics.New(s.buildInfo)
	}

	systemHandler := system.NewHandler(s.source, s.buildInfo, s.appConfig.Health.RuntimeVersionField, m)
	storefrontHandler := storefront.NewHandler(s.source, m)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		EnableHSTS:         httpCfg.TLSServer,
		AllowOrigins:       httpCfg.CORS.AllowOrigins,
		RateLimitPerSecond: httpCfg.RateLimit.RequestsPerSecond,
		RateLimitBurst:     httpCfg.RateLimit.Burst,
		Metrics:            m,
	})

	RegisterRoutes(e, systemHandler, storefrontHandler, RouteOptions{
		EnableVersion: httpCfg.EnableVersion,
		EnableSwagger: httpCfg.EnableSwagger,
		Metrics:       m,
	})

	return e
}

// startHTTPServer 서버가 종료될 때까지 블로킹되며, 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	httpCfg := s.appConfig.HTTPServer
	address := fmt.Sprintf(":%d", httpCfg.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": httpCfg.ListenPort,
		"tls":  httpCfg.TLSServer,
	}).Info(constants.LogMsgHTTPServerStarting)

	var err error
	if httpCfg.TLSServer {
		err = e.StartTLS(address, httpCfg.TLSCertFile, httpCfg.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError http.ErrServerClosed는 정상 종료로 보고 Info로, 그 외의 에러는 Error로 기록합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTPServer.ListenPort,
		"error": err,
	}).Error(constants.LogMsgHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 HTTP 서버의 조기 종료를 기다린 뒤 상태를 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
