package response

// ErrorResponse 프레임워크 수준의 오류(404, 405, 429, 5xx) 응답입니다.
type ErrorResponse struct {
	// ResultCode HTTP 상태 코드
	ResultCode int `json:"result_code" example:"404"`

	// Message 에러 메시지
	Message string `json:"message" example:"요청한 페이지를 찾을 수 없습니다"`
}
