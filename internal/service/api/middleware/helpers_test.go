package middleware

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// captureLogs 표준 로거의 출력을 JSON 형식으로 버퍼에 모읍니다.
func captureLogs(t *testing.T) *syncBuffer {
	t.Helper()

	logger := applog.StandardLogger()
	origOut, origFormatter, origLevel := logger.Out, logger.Formatter, logger.GetLevel()

	buf := &syncBuffer{}
	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.TraceLevel)

	t.Cleanup(func() {
		applog.SetOutput(origOut)
		applog.SetFormatter(origFormatter)
		applog.SetLevel(origLevel)
	})
	return buf
}

// logEntries 버퍼에 기록된 JSON 로그를 줄 단위로 해석합니다.
func logEntries(t *testing.T, buf *syncBuffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}
