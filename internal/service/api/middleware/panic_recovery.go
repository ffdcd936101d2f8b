package middleware

import (
	"fmt"
	"runtime"

	apperrors "github.com/darkkaiser/shop-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize 패닉 발생 시 기록할 스택 트레이스의 최대 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러나 이후 미들웨어에서 발생한 panic을 복구하여 500 응답으로 변환합니다.
// 스택 트레이스는 Error 레벨로 기록됩니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				err, ok := r.(error)
				if !ok {
					err = apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
				}

				stack := make([]byte, stackBufferSize)
				stack = stack[:runtime.Stack(stack, false)]

				fields := applog.Fields{
					"error": err,
					"path":  c.Request().URL.Path,
					"stack": string(stack),
				}
				if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
					fields["request_id"] = id
				}
				applog.WithComponentAndFields(constants.ComponentMiddleware, fields).Error(constants.LogMsgPanicRecovered)

				c.Error(err)
				returnErr = nil
			}()

			return next(c)
		}
	}
}
