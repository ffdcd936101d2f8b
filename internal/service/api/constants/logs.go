package constants

// 내부 로그 메시지입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 생명주기
	// ------------------------------------------------------------------------------------------------

	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgHTTPServerFatalError    = "API 서비스 > http 서버 실행 중 치명적인 오류가 발생하였습니다"

	// ------------------------------------------------------------------------------------------------
	// 요청 처리
	// ------------------------------------------------------------------------------------------------

	LogMsgHTTPRequest         = "HTTP 요청"
	LogMsgHTTP4xxClientError  = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError  = "HTTP 5xx: 서버 내부 오류"
	LogMsgPanicRecovered      = "PANIC RECOVERED"
	LogMsgRateLimitExceeded   = "요청 제한 초과"
	LogMsgHealthCheck         = "헬스체크 요청"
	LogMsgHealthEncodeErr     = "헬스체크 응답 생성 실패"
	LogMsgVersionInfo         = "버전 정보 요청"
	LogMsgStorefrontRendered  = "스토어프론트 페이지 렌더링"
	LogMsgStorefrontRenderErr = "스토어프론트 페이지 렌더링 실패"
)
