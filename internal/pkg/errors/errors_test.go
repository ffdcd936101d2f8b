package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// 생성
// =============================================================================

func TestNew(t *testing.T) {
	err := New(InvalidInput, "포트 범위 초과")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, InvalidInput, appErr.Type())
	assert.Equal(t, "포트 범위 초과", appErr.Message())
	assert.Nil(t, appErr.Unwrap())
	assert.Equal(t, "[InvalidInput] 포트 범위 초과", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(NotFound, "파일 없음: %s", "shop-server.json")

	assert.Equal(t, "[NotFound] 파일 없음: shop-server.json", err.Error())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		wrap    func(error) error
		wantMsg string
	}{
		{
			name:    "Wrap",
			wrap:    func(err error) error { return Wrap(err, System, "설정 파일 읽기 실패") },
			wantMsg: "[System] 설정 파일 읽기 실패: permission denied",
		},
		{
			name:    "Wrapf",
			wrap:    func(err error) error { return Wrapf(err, System, "%s 읽기 실패", "shop-server.json") },
			wantMsg: "[System] shop-server.json 읽기 실패: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wrap(fs.ErrPermission)

			assert.Equal(t, tt.wantMsg, err.Error())
			assert.True(t, stderrors.Is(err, fs.ErrPermission))
			assert.Nil(t, tt.wrap(nil), "nil 에러는 감싸지 않아야 합니다")
		})
	}
}

// =============================================================================
// 체인 탐색
// =============================================================================

func TestIs(t *testing.T) {
	inner := New(NotFound, "missing")
	outer := Wrap(fmt.Errorf("middle: %w", inner), Internal, "load")

	assert.True(t, Is(outer, Internal))
	assert.True(t, Is(outer, NotFound))
	assert.False(t, Is(outer, Timeout))
	assert.False(t, Is(nil, Unknown))
	assert.False(t, Is(stderrors.New("plain"), Unknown))
}

func TestRootCause(t *testing.T) {
	root := stderrors.New("root")
	err := Wrap(Wrap(root, System, "a"), Internal, "b")

	assert.Same(t, root, RootCause(err))
	assert.Nil(t, RootCause(nil))

	plain := stderrors.New("plain")
	assert.Same(t, plain, RootCause(plain))
}

func TestUnderlyingType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, Unknown},
		{"표준 에러", stderrors.New("x"), Unknown},
		{"단일 AppError", New(Timeout, "x"), Timeout},
		{"가장 안쪽 AppError", Wrap(New(NotFound, "x"), Internal, "y"), NotFound},
		{"외부 에러를 감싼 경우", Wrap(fs.ErrNotExist, NotFound, "x"), NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnderlyingType(tt.err))
		})
	}
}

// =============================================================================
// 포맷팅
// =============================================================================

func TestAppError_Format(t *testing.T) {
	err := Wrap(stderrors.New("io failure"), System, "read config")

	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	verbose := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(verbose, "[System] read config"))
	assert.Contains(t, verbose, "Stack trace:")
	assert.Contains(t, verbose, "errors_test.go")
	assert.Contains(t, verbose, "Caused by:\n\tio failure")
}

func TestAppError_Format_StackPrintedOnce(t *testing.T) {
	err := Wrap(New(NotFound, "inner"), Internal, "outer")

	verbose := fmt.Sprintf("%+v", err)

	assert.Equal(t, 1, strings.Count(verbose, "Stack trace:"), "체인 중간에서는 스택을 출력하지 않습니다")
	assert.Contains(t, verbose, "[Internal] outer")
	assert.Contains(t, verbose, "[NotFound] inner")
}

// =============================================================================
// 스택
// =============================================================================

func TestStack_StartsAtCaller(t *testing.T) {
	err := New(Internal, "x")

	var appErr *AppError
	require.True(t, As(err, &appErr))

	stack := appErr.Stack()
	require.NotEmpty(t, stack)
	assert.LessOrEqual(t, len(stack), maxStackDepth)
	assert.Equal(t, "errors_test.go", stack[0].File)
	assert.Contains(t, stack[0].Function, "TestStack_StartsAtCaller")
}

func TestConcurrentCreation(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := Wrapf(New(NotFound, "x"), Internal, "worker %d", i)
			assert.True(t, Is(err, NotFound))
		}(i)
	}
	wg.Wait()
}
