package httputil

import (
	"net/http"

	"github.com/darkkaiser/shop-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newError(code int, message string) error {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다.
func NewTooManyRequestsError(message string) error {
	return newError(http.StatusTooManyRequests, message)
}

