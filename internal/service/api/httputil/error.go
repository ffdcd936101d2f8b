package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	"github.com/darkkaiser/shop-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler echo의 전역 에러 핸들러입니다.
//
// 모든 에러를 ErrorResponse JSON으로 응답하고, 4xx는 Warn, 5xx는 Error 레벨로 기록합니다.
// 이미 응답이 전송된 경우에는 기록만 하며, HEAD 요청에는 본문 없이 상태 코드만 응답합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	entry := applog.WithComponentAndFields(constants.ComponentErrorHandler, fields)
	switch {
	case code >= http.StatusInternalServerError:
		entry.Error(constants.LogMsgHTTP5xxServerError)
	case code >= http.StatusBadRequest:
		entry.Warn(constants.LogMsgHTTP4xxClientError)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolve 에러에서 응답 상태 코드와 메시지를 결정합니다.
// echo.HTTPError가 아닌 에러는 내부 정보를 노출하지 않도록 500과 고정 메시지로 응답합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}

	switch he.Code {
	case http.StatusNotFound:
		return he.Code, constants.ErrMsgNotFound
	case http.StatusMethodNotAllowed:
		return he.Code, constants.ErrMsgMethodNotAllowed
	}

	switch m := he.Message.(type) {
	case string:
		return he.Code, m
	case response.ErrorResponse:
		return he.Code, m.Message
	}

	if he.Code >= http.StatusInternalServerError {
		return he.Code, constants.ErrMsgInternalServer
	}
	return he.Code, http.StatusText(he.Code)
}
