package errors

import (
	"path/filepath"
	"runtime"
)

const (
	// callerSkip runtime.Callers, captureStack, 공개 생성 함수(New/Wrap 등)를 건너뛰어
	// 에러를 생성한 사용자 코드가 첫 번째 프레임이 되도록 합니다.
	callerSkip = 3

	maxStackDepth = 5
)

// StackFrame 에러 생성 시점의 호출 위치 하나를 나타냅니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack(skip int) []StackFrame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]StackFrame, 0, n)
	for {
		f, more := frames.Next()
		stack = append(stack, StackFrame{
			File:     filepath.Base(f.File),
			Line:     f.Line,
			Function: f.Function,
		})
		if !more {
			return stack
		}
	}
}
