package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer Setup이 연 로그 파일들을 한 번에 닫습니다. 여러 번 호출해도 안전합니다.
type closer struct {
	files []io.Closer
	hook  *hook

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	// 파일을 닫기 전에 hook부터 막아야 닫힌 파일에 대한 쓰기가 발생하지 않습니다.
	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, f := range c.files {
		if f == nil {
			continue
		}
		if s, ok := f.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := f.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
