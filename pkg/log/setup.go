package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	setupOnce   sync.Once
	setupCloser io.Closer
	setupErr    error
)

// Setup 전역 로거를 초기화하고 레벨별 로그 파일과 콘솔 출력을 구성합니다.
//
// 프로세스 생명주기 동안 단 한 번만 초기화되며, 이후 호출은 최초 호출의 결과(Closer, 에러)를 그대로 반환합니다.
// 반환된 Closer는 애플리케이션 종료 시 반드시 Close() 해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		setupCloser, setupErr = setup(opts)
	})

	return setupCloser, setupErr
}

func setup(opts Options) (_ io.Closer, err error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리(%s) 생성 실패: %w", dir, err)
	}

	rotation := newRotation(dir, opts)

	var files []io.Closer
	defer func() {
		// 초기화 도중 실패하면 이미 연 파일을 정리합니다.
		if err != nil {
			for _, f := range files {
				_ = f.Close()
			}
		}
	}()

	h := &hook{formatter: newTextFormatter(opts.CallerPathPrefix)}

	mainFile := rotation.open(opts.Name)
	files = append(files, mainFile)
	h.mainWriter = mainFile

	if opts.EnableCriticalLog {
		f := rotation.open(opts.Name + ".critical")
		files = append(files, f)
		h.criticalWriter = f
	}
	if opts.EnableVerboseLog {
		f := rotation.open(opts.Name + ".verbose")
		files = append(files, f)
		h.verboseWriter = f
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = os.Stdout
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}

	// 모든 출력은 hook이 담당합니다. 기본 출력 경로는 포맷팅 비용 없이 버립니다.
	logger := logrus.StandardLogger()
	logger.SetLevel(level)
	logger.SetReportCaller(opts.ReportCaller)
	logger.SetFormatter(&silentFormatter{})
	logger.SetOutput(io.Discard)
	logger.AddHook(h)

	c := &closer{files: files, hook: h}

	// Fatal 로그로 프로세스가 종료되기 직전에 버퍼를 비우고 파일을 닫습니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// rotation lumberjack 기반 로그 파일의 공통 로테이션 정책입니다.
type rotation struct {
	dir        string
	maxSizeMB  int
	maxBackups int
	maxAge     int
}

func newRotation(dir string, opts Options) rotation {
	r := rotation{
		dir:        dir,
		maxSizeMB:  opts.MaxSizeMB,
		maxBackups: opts.MaxBackups,
		maxAge:     opts.MaxAge,
	}
	if r.maxSizeMB == 0 {
		r.maxSizeMB = defaultMaxSizeMB
	}
	if r.maxBackups == 0 {
		r.maxBackups = defaultMaxBackups
	}
	return r
}

func (r rotation) open(baseName string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(r.dir, baseName+".log"),
		MaxSize:    r.maxSizeMB,
		MaxBackups: r.maxBackups,
		MaxAge:     r.maxAge,
		LocalTime:  true,
	}
}

// newTextFormatter 파일/콘솔 출력에 사용할 포맷터를 생성합니다.
// 호출 위치는 "함수명(line:N)" 형태로 기록하고, pathPrefix가 주어지면 "..."로 축약합니다.
func newTextFormatter(pathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (string, string) {
			function := frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if pathPrefix != "" {
				if rest, ok := strings.CutPrefix(function, pathPrefix); ok {
					function = "..." + rest
				}
			}
			return function, ""
		},
	}
}
