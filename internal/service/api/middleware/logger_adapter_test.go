package middleware

import (
	"bytes"
	"testing"

	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

var _ echo.Logger = Logger{}

func newTestAdapter() (Logger, *bytes.Buffer) {
	l := logrus.New()
	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	l.SetFormatter(&applog.JSONFormatter{})
	l.SetLevel(applog.TraceLevel)
	return Logger{Logger: l}, buf
}

// =============================================================================
// 레벨 변환 테스트
// =============================================================================

func TestLogger_Level(t *testing.T) {
	tests := []struct {
		appLevel applog.Level
		want     log.Lvl
	}{
		{applog.DebugLevel, log.DEBUG},
		{applog.InfoLevel, log.INFO},
		{applog.WarnLevel, log.WARN},
		{applog.ErrorLevel, log.ERROR},
		{applog.TraceLevel, log.OFF},
		{applog.FatalLevel, log.OFF},
		{applog.PanicLevel, log.OFF},
	}

	for _, tt := range tests {
		t.Run(tt.appLevel.String(), func(t *testing.T) {
			l, _ := newTestAdapter()
			l.Logger.SetLevel(tt.appLevel)
			assert.Equal(t, tt.want, l.Level())
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	l, _ := newTestAdapter()

	l.SetLevel(log.WARN)
	assert.Equal(t, applog.WarnLevel, l.Logger.GetLevel())

	l.SetLevel(log.OFF)
	assert.Equal(t, applog.WarnLevel, l.Logger.GetLevel(), "OFF는 무시되어야 합니다")
}

// =============================================================================
// 출력 위임 테스트
// =============================================================================

func TestLogger_Delegation(t *testing.T) {
	l, buf := newTestAdapter()

	l.Infof("started on %d", 8080)
	assert.Equal(t, "started on 8080", gjson.Get(buf.String(), "msg").String())
	assert.Equal(t, "info", gjson.Get(buf.String(), "level").String())

	buf.Reset()
	l.Warnj(log.JSON{"port": 80})
	assert.Equal(t, "warning", gjson.Get(buf.String(), "level").String())
	assert.Equal(t, int64(80), gjson.Get(buf.String(), "port").Int())

	buf.Reset()
	l.Debug("debug message")
	assert.Equal(t, "debug", gjson.Get(buf.String(), "level").String())
}

func TestLogger_OutputAndPrefix(t *testing.T) {
	l, buf := newTestAdapter()

	assert.Same(t, buf, l.Output())

	other := &bytes.Buffer{}
	l.SetOutput(other)
	assert.Same(t, other, l.Output())

	l.SetPrefix("ignored")
	l.SetHeader("ignored")
	assert.Empty(t, l.Prefix())
}
