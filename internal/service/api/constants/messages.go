package constants

// 클라이언트에게 반환되는 에러 메시지입니다.
const (
	ErrMsgNotFound           = "요청한 페이지를 찾을 수 없습니다"
	ErrMsgMethodNotAllowed   = "허용되지 않는 요청 메서드입니다"
	ErrMsgTooManyRequests    = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"
	ErrMsgInternalServer     = "내부 서버 오류가 발생했습니다"
	ErrMsgServiceUnavailable = "요청 처리 시간이 초과되었습니다"
)

// 패닉 메시지입니다. 잘못된 구성으로 서버를 생성하려 할 때 사용됩니다.
const (
	PanicMsgAppConfigRequired      = "AppConfig는 필수입니다"
	PanicMsgSnapshotSourceRequired = "sysinfo.Source는 필수입니다"
	PanicMsgRateLimitInvalid       = "RateLimiting: requestsPerSecond와 burst는 양수여야 합니다 (rps: %d, burst: %d)"
)
