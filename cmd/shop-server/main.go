package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/shop-server/internal/config"
	"github.com/darkkaiser/shop-server/internal/pkg/sysinfo"
	"github.com/darkkaiser/shop-server/internal/pkg/version"
	"github.com/darkkaiser/shop-server/internal/service"
	"github.com/darkkaiser/shop-server/internal/service/api"
	applog "github.com/darkkaiser/shop-server/pkg/log"
)

// @title Shop Server API
// @version 1.0.0
// @description 데모 상점 페이지와 헬스체크 엔드포인트를 제공하는 서버입니다.
// @description
// @description ## 엔드포인트
// @description - / , /index.php : 상품 6개와 배포 정보를 보여주는 HTML 페이지
// @description - /health , /health_check.php : 프로세스 상태 (항상 healthy)
// @description - /version : 빌드 정보
// @description - /metrics : Prometheus 지표

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const (
	banner = `
  ____   _                      ____
 / ___| | |__    ___   _ __   / ___|   ___  _ __ __   __  ___  _ __
 \___ \ | '_ \  / _ \ | '_ \  \___ \  / _ \| '__|\ \ / / / _ \| '__|
  ___) || | | || (_) || |_) |  ___) ||  __/| |    \ V / |  __/| |
 |____/ |_| |_| \___/ | .__/  |____/  \___||_|     \_/   \___||_|
                      |_|                                   %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

	componentMain = "main"
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %+v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(newLogOptions(appConfig))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	// 아스키아트 출력(폰트: standard)
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(componentMain, applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(componentMain).Warn(warning)
	}

	loc, err := sysinfo.LoadLocation(appConfig.Storefront.Timezone)
	if err != nil {
		applog.WithComponentAndFields(componentMain, applog.Fields{
			"error": err,
		}).Fatal("시간대 설정 실패로 프로그램을 종료합니다")
	}

	apiService := api.NewService(appConfig, sysinfo.NewProvider(loc), buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	if err := startServices(serviceStopCtx, serviceStopWG, []service.Service{apiService}); err != nil {
		applog.WithComponentAndFields(componentMain, applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패")

		cancel()
		serviceStopWG.Wait()

		applog.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent(componentMain).Info("서버 가동 완료")

	sig := <-termC

	applog.WithComponentAndFields(componentMain, applog.Fields{
		"signal": sig.String(),
	}).Info("종료 신호 수신")

	cancel()
	serviceStopWG.Wait()

	applog.WithComponent(componentMain).Info("서버 종료 완료")
}

// newLogOptions Debug 여부에 따라 로그 프로필을 고르고 설정 파일의 로그 디렉터리를 적용합니다.
func newLogOptions(appConfig *config.AppConfig) applog.Options {
	var opts applog.Options
	if appConfig.Debug {
		opts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		opts = applog.NewProductionOptions(config.AppName)
	}
	opts.Dir = appConfig.Log.Dir

	return opts
}

// startServices 서비스를 순서대로 시작합니다. 하나라도 실패하면 그 에러를 반환하며,
// 이미 시작된 서비스는 호출자가 serviceStopCtx를 취소하여 종료해야 합니다.
func startServices(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, services []service.Service) error {
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			// 시작에 실패한 서비스는 Done을 호출하지 않습니다.
			serviceStopWG.Done()
			return err
		}
	}
	return nil
}
