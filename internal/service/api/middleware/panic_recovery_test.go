package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// PanicRecovery 테스트
// =============================================================================

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name         string
		payload      any
		requestID    string
		wantErrorMsg string
	}{
		{name: "문자열 패닉", payload: "치명적인 오류", wantErrorMsg: "치명적인 오류"},
		{name: "에러 패닉", payload: errors.New("템플릿 실행 실패"), wantErrorMsg: "템플릿 실행 실패"},
		{name: "정수 패닉", payload: 12345, wantErrorMsg: "12345"},
		{name: "Request ID 포함", payload: "boom", requestID: "req-123", wantErrorMsg: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.requestID != "" {
				c.Response().Header().Set(echo.HeaderXRequestID, tt.requestID)
			}

			h := PanicRecovery()(func(c echo.Context) error {
				panic(tt.payload)
			})

			require.NotPanics(t, func() {
				assert.NoError(t, h(c))
			})
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			entries := logEntries(t, buf)
			require.Len(t, entries, 1)
			entry := entries[0]

			assert.Equal(t, constants.LogMsgPanicRecovered, entry["msg"])
			assert.Equal(t, "error", entry["level"])
			assert.Equal(t, constants.ComponentMiddleware, entry["component"])
			assert.Contains(t, entry["error"], tt.wantErrorMsg)
			assert.NotEmpty(t, entry["stack"])
			assert.LessOrEqual(t, len(entry["stack"].(string)), stackBufferSize)

			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, entry["request_id"])
			} else {
				assert.NotContains(t, entry, "request_id")
			}
		})
	}
}

func TestPanicRecovery_NoPanic(t *testing.T) {
	buf := captureLogs(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	h := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}

func TestPanicRecovery_PassesHandlerError(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	want := echo.NewHTTPError(http.StatusBadRequest, "bad")
	h := PanicRecovery()(func(c echo.Context) error { return want })

	assert.Equal(t, want, h(c))
}
