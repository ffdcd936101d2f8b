package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/shop-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"404은 고정 메시지", http.MethodGet, echo.ErrNotFound, http.StatusNotFound, constants.ErrMsgNotFound},
		{"405는 고정 메시지", http.MethodPost, echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, constants.ErrMsgMethodNotAllowed},
		{"429", http.MethodGet, NewTooManyRequestsError(constants.ErrMsgTooManyRequests), http.StatusTooManyRequests, constants.ErrMsgTooManyRequests},
		{"문자열 메시지", http.MethodGet, echo.NewHTTPError(http.StatusBadRequest, "bad"), http.StatusBadRequest, "bad"},
		{"메시지 없는 5xx", http.MethodGet, echo.NewHTTPError(http.StatusBadGateway, 123), http.StatusBadGateway, constants.ErrMsgInternalServer},
		{"일반 에러는 500", http.MethodGet, errors.New("boom"), http.StatusInternalServerError, constants.ErrMsgInternalServer},
		{"AppError도 내부 메시지를 노출하지 않음", http.MethodGet, apperrors.New(apperrors.Internal, "template exec failed"), http.StatusInternalServerError, constants.ErrMsgInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(tt.method, "/somewhere", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tt.err, c)

			require.Equal(t, tt.wantCode, rec.Code)
			body := rec.Body.String()
			assert.Equal(t, int64(tt.wantCode), gjson.Get(body, "result_code").Int())
			assert.Equal(t, tt.wantMsg, gjson.Get(body, "message").String())
		})
	}
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/missing", nil), rec)

	ErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "already sent"))

	ErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already sent", rec.Body.String())
}
