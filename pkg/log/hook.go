package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 하나의 로그 이벤트를 여러 Writer로 분배합니다.
//
//   - consoleWriter : 모든 레벨
//   - criticalWriter: ERROR 이상
//   - mainWriter    : INFO 이상 (ERROR 이상 포함)
//   - verboseWriter : DEBUG, TRACE (메인 로그에는 기록하지 않음)
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 로그 이벤트를 한 번만 포맷팅한 뒤 레벨에 맞는 Writer들에 기록합니다.
// 여러 Writer에서 실패한 경우 처음 발생한 에러를 반환합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 출력 실패는 로깅 실패로 취급하지 않습니다.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG] 콘솔 출력 실패: %v\n", err)
		}
	}

	var firstErr error
	write := func(w io.Writer, name string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG] %s 로그 파일 쓰기 실패: %v\n", name, err)
		}
	}

	if entry.Level >= DebugLevel {
		write(h.verboseWriter, "verbose")
		return firstErr
	}

	if entry.Level <= ErrorLevel {
		write(h.criticalWriter, "critical")
	}
	write(h.mainWriter, "main")

	return firstErr
}

// Close 이후의 모든 로그 기록을 무시하도록 전환합니다.
// 진행 중인 Fire 호출이 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	return nil
}
