package middleware

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/darkkaiser/shop-server/internal/service/api/constants"
	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HTTPLogger 요청/응답 정보를 구조화된 접근 로그로 기록하는 미들웨어를 반환합니다.
//
// 핸들러가 반환한 에러는 여기서 c.Error()로 먼저 처리하므로, 로그에는 최종 응답 상태 코드가 기록됩니다.
// 민감한 쿼리 파라미터(constants.SensitiveQueryParams)의 값은 가려서 기록합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// panic이 발생해도 로그가 남도록 defer로 기록합니다.
			defer func() {
				logRequest(c, time.Since(start))
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}

func logRequest(c echo.Context, latency time.Duration) {
	req := c.Request()
	res := c.Response()

	path := req.URL.Path
	if path == "" {
		path = "/"
	}

	bytesIn := req.Header.Get(echo.HeaderContentLength)
	if bytesIn == "" {
		bytesIn = "0"
	}

	applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
		"method":     req.Method,
		"path":       path,
		"uri":        maskSensitiveQueryParams(req.RequestURI),
		"host":       req.Host,
		"protocol":   req.Proto,
		"remote_ip":  c.RealIP(),
		"user_agent": req.UserAgent(),
		"referer":    req.Referer(),

		"status":    res.Status,
		"bytes_in":  bytesIn,
		"bytes_out": strconv.FormatInt(res.Size, 10),

		"latency_us":    latency.Microseconds(),
		"latency_human": latency.String(),

		"request_id": res.Header().Get(echo.HeaderXRequestID),
	}).Info(constants.LogMsgHTTPRequest)
}

// maskSensitiveQueryParams URI에 포함된 민감한 쿼리 파라미터 값을 가립니다.
// URI를 해석할 수 없으면 원본을 그대로 반환합니다.
//
//	"/?token=abcdef123456&page=2" -> "/?page=2&token=abcd%2A%2A%2A"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.RawQuery == "" {
		return uri
	}

	q := u.Query()
	masked := false
	for _, key := range constants.SensitiveQueryParams {
		if q.Has(key) {
			q.Set(key, mask(q.Get(key)))
			masked = true
		}
	}
	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// mask 앞 4자만 남기고 나머지를 "***"로 바꿉니다. 4자 이하는 전체를 가립니다.
func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", 3)
	}
	return s[:4] + "***"
}
