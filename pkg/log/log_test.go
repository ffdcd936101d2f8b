package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := StandardLogger()
	prevOut, prevFormatter := l.Out, l.Formatter
	defer func() {
		SetOutput(prevOut)
		SetFormatter(prevFormatter)
	}()

	SetOutput(&buf)
	SetFormatter(&JSONFormatter{})

	WithComponent("api.storefront").Info("rendered")
	line := buf.String()
	assert.Equal(t, "api.storefront", gjson.Get(line, "component").String())
	assert.Equal(t, "rendered", gjson.Get(line, "msg").String())

	buf.Reset()
	fields := Fields{"status": 200}
	WithComponentAndFields("api.http", fields).Warn("slow")
	line = buf.String()
	assert.Equal(t, "api.http", gjson.Get(line, "component").String())
	assert.Equal(t, int64(200), gjson.Get(line, "status").Int())
	assert.NotContains(t, fields, componentKey, "전달받은 필드 맵은 변경되지 않아야 합니다")
}
