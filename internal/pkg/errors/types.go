package errors

import "strconv"

// ErrorType 에러의 성격을 분류합니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (템플릿 실행 실패 등 버그로 간주)
	Internal

	// System 디스크, 네트워크 등 실행 환경의 장애
	System

	// InvalidInput 설정값 또는 입력값 검증 실패
	InvalidInput

	// NotFound 파일 등 요청한 대상이 존재하지 않음
	NotFound

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 일시적으로 사용할 수 없는 상태 (종료 중 등)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	InvalidInput: "InvalidInput",
	NotFound:     "NotFound",
	Timeout:      "Timeout",
	Unavailable:  "Unavailable",
}

func (t ErrorType) String() string {
	if t >= 0 && int(t) < len(errorTypeNames) {
		return errorTypeNames[t]
	}
	return "ErrorType(" + strconv.Itoa(int(t)) + ")"
}
