package log

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Helpers
// =============================================================================

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

type brokenFormatter struct{}

func (brokenFormatter) Format(*Entry) ([]byte, error) {
	return nil, errors.New("format failed")
}

func newRoutingHook() (h *hook, main, critical, verbose, console *lockedBuffer) {
	main, critical, verbose, console = &lockedBuffer{}, &lockedBuffer{}, &lockedBuffer{}, &lockedBuffer{}
	h = &hook{
		mainWriter:     main,
		criticalWriter: critical,
		verboseWriter:  verbose,
		consoleWriter:  console,
		formatter:      &TextFormatter{DisableTimestamp: true},
	}
	return
}

func fire(t *testing.T, h *hook, level Level, msg string) error {
	t.Helper()
	entry := NewEntryForTest(level, msg)
	return h.Fire(entry)
}

// =============================================================================
// Routing
// =============================================================================

func TestHook_Levels(t *testing.T) {
	assert.Equal(t, AllLevels, (&hook{}).Levels())
}

func TestHook_Fire_Routing(t *testing.T) {
	tests := []struct {
		name         string
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{"Error는 메인과 critical에 기록", ErrorLevel, true, true, false},
		{"Warn은 메인에만 기록", WarnLevel, true, false, false},
		{"Info는 메인에만 기록", InfoLevel, true, false, false},
		{"Debug는 verbose에만 기록", DebugLevel, false, false, true},
		{"Trace는 verbose에만 기록", TraceLevel, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, main, critical, verbose, console := newRoutingHook()

			require.NoError(t, fire(t, h, tt.level, "routing-check"))

			assert.Equal(t, tt.wantMain, bytes.Contains([]byte(main.String()), []byte("routing-check")))
			assert.Equal(t, tt.wantCritical, bytes.Contains([]byte(critical.String()), []byte("routing-check")))
			assert.Equal(t, tt.wantVerbose, bytes.Contains([]byte(verbose.String()), []byte("routing-check")))
			assert.Contains(t, console.String(), "routing-check", "콘솔에는 모든 레벨이 기록되어야 합니다")
		})
	}
}

func TestHook_Fire_NilWriters(t *testing.T) {
	h := &hook{formatter: &TextFormatter{}}

	assert.NoError(t, fire(t, h, ErrorLevel, "no writers"))
	assert.NoError(t, fire(t, h, DebugLevel, "no writers"))
}

// =============================================================================
// Failure handling
// =============================================================================

func TestHook_Fire_WriteFailures(t *testing.T) {
	t.Run("critical 실패 시에도 메인 로그는 기록된다", func(t *testing.T) {
		main := &lockedBuffer{}
		h := &hook{
			mainWriter:     main,
			criticalWriter: brokenWriter{},
			formatter:      &TextFormatter{},
		}

		err := fire(t, h, ErrorLevel, "still written")

		assert.EqualError(t, err, "disk full")
		assert.Contains(t, main.String(), "still written")
	})

	t.Run("콘솔 실패는 에러로 반환하지 않는다", func(t *testing.T) {
		main := &lockedBuffer{}
		h := &hook{
			mainWriter:    main,
			consoleWriter: brokenWriter{},
			formatter:     &TextFormatter{},
		}

		assert.NoError(t, fire(t, h, InfoLevel, "console broken"))
		assert.Contains(t, main.String(), "console broken")
	})

	t.Run("포맷팅 실패", func(t *testing.T) {
		h := &hook{mainWriter: &lockedBuffer{}, formatter: brokenFormatter{}}

		assert.EqualError(t, fire(t, h, InfoLevel, "x"), "format failed")
	})
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestHook_Close(t *testing.T) {
	h, main, _, _, console := newRoutingHook()

	require.NoError(t, h.Close())
	require.NoError(t, fire(t, h, ErrorLevel, "after close"))

	assert.Empty(t, main.String())
	assert.Empty(t, console.String())
}

func TestHook_ConcurrentFireAndClose(t *testing.T) {
	h, _, _, _, _ := newRoutingHook()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = h.Fire(NewEntryForTest(InfoLevel, "concurrent"))
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = h.Close()
	}()

	wg.Wait()
	assert.True(t, h.closed)
}
