// Package errors ErrorType으로 분류되는 애플리케이션 에러를 제공합니다.
//
// 새 에러 생성:
//
//	err := errors.New(errors.InvalidInput, "listen_port 값이 올바르지 않습니다")
//
// 원인 에러에 문맥 추가:
//
//	if err != nil {
//	    return errors.Wrap(err, errors.System, "설정 파일을 읽을 수 없습니다")
//	}
//
// 타입 검사:
//
//	if errors.Is(err, errors.NotFound) { ... }
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 타입, 메시지, 원인 에러, 생성 위치의 스택을 함께 보관하는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

func (e *AppError) Type() ErrorType { return e.errType }
func (e *AppError) Message() string { return e.message }
func (e *AppError) Stack() []StackFrame { return e.stack }
func (e *AppError) Unwrap() error { return e.cause }

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

// Format %+v로 출력하면 에러 체인과 스택 트레이스를 여러 줄로 출력합니다.
//
// 스택은 체인의 경계(원인이 없거나 원인이 AppError가 아닌 경우)에서만 출력하여 중복을 피합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *AppError) formatVerbose(s fmt.State) {
	fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

	var inner *AppError
	if (e.cause == nil || !errors.As(e.cause, &inner)) && len(e.stack) > 0 {
		fmt.Fprint(s, "\nStack trace:")
		for _, f := range e.stack {
			fn := f.Function
			if i := strings.LastIndex(fn, "/"); i >= 0 {
				fn = fn[i+1:]
			}
			fmt.Fprintf(s, "\n\t%s:%d %s", f.File, f.Line, fn)
		}
	}

	if e.cause == nil {
		return
	}

	fmt.Fprint(s, "\nCaused by:\n")
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, 'v')
	} else {
		fmt.Fprintf(s, "\t%v", e.cause)
	}
}

func New(errType ErrorType, message string) error {
	return &AppError{errType: errType, message: message, stack: captureStack(callerSkip)}
}

func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), stack: captureStack(callerSkip)}
}

// Wrap err에 타입과 메시지를 덧붙입니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: message, cause: err, stack: captureStack(callerSkip)}
}

// Wrapf 포맷 문자열을 사용하는 Wrap입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), cause: err, stack: captureStack(callerSkip)}
}

// Is 에러 체인의 AppError 중 하나라도 errType이면 true를 반환합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*AppError); ok && e.errType == errType {
			return true
		}
	}
	return false
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// UnderlyingType 체인에서 가장 안쪽에 있는 AppError의 타입을 반환합니다.
// AppError가 없으면 Unknown입니다.
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*AppError); ok {
			t = e.errType
		}
	}
	return t
}
