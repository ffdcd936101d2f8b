package log

// NewProductionOptions 운영 환경용 로그 설정을 반환합니다.
//
// 컨테이너 환경에서는 로그 수집기가 표준 출력을 읽는 경우가 많으므로 콘솔 출력도 켜 둡니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller:     true,
		CallerPathPrefix: "github.com/darkkaiser/shop-server",
	}
}

// NewDevelopmentOptions 개발 환경용 로그 설정을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableCriticalLog: false,
		EnableVerboseLog:  true,
		EnableConsoleLog:  true,

		ReportCaller:     true,
		CallerPathPrefix: "github.com/darkkaiser/shop-server",
	}
}
