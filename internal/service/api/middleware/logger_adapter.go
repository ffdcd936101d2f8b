package middleware

import (
	"io"

	applog "github.com/darkkaiser/shop-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// Logger echo가 요구하는 gommon log.Logger 인터페이스를 애플리케이션 로거 위에 구현합니다.
// echo 내부에서 남기는 로그도 애플리케이션 로그 파일로 기록되도록 echo.Logger에 설정합니다.
type Logger struct {
	*applog.Logger
}

// echo 레벨과 애플리케이션 레벨의 대응 관계입니다. 여기에 없는 레벨은 OFF로 취급합니다.
var (
	toEchoLevel = map[applog.Level]log.Lvl{
		applog.DebugLevel: log.DEBUG,
		applog.InfoLevel:  log.INFO,
		applog.WarnLevel:  log.WARN,
		applog.ErrorLevel: log.ERROR,
	}
	toAppLevel = map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}
)

func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Prefix, Header 기능은 사용하지 않습니다.
func (l Logger) Prefix() string   { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}

// Level 현재 로그 레벨을 echo 레벨로 반환합니다.
// Trace, Fatal, Panic처럼 echo에 대응하는 레벨이 없으면 log.OFF입니다.
func (l Logger) Level() log.Lvl {
	if lvl, ok := toEchoLevel[l.Logger.GetLevel()]; ok {
		return lvl
	}
	return log.OFF
}

// SetLevel echo 레벨을 애플리케이션 레벨로 바꿔 설정합니다. log.OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if level, ok := toAppLevel[lvl]; ok {
		l.Logger.SetLevel(level)
	}
}

func (l Logger) Print(i ...any)                 { l.Logger.Print(i...) }
func (l Logger) Printf(format string, a ...any) { l.Logger.Printf(format, a...) }
func (l Logger) Printj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Print() }

func (l Logger) Debug(i ...any)                 { l.Logger.Debug(i...) }
func (l Logger) Debugf(format string, a ...any) { l.Logger.Debugf(format, a...) }
func (l Logger) Debugj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Debug() }

func (l Logger) Info(i ...any)                 { l.Logger.Info(i...) }
func (l Logger) Infof(format string, a ...any) { l.Logger.Infof(format, a...) }
func (l Logger) Infoj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Info() }

func (l Logger) Warn(i ...any)                 { l.Logger.Warn(i...) }
func (l Logger) Warnf(format string, a ...any) { l.Logger.Warnf(format, a...) }
func (l Logger) Warnj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Warn() }

func (l Logger) Error(i ...any)                 { l.Logger.Error(i...) }
func (l Logger) Errorf(format string, a ...any) { l.Logger.Errorf(format, a...) }
func (l Logger) Errorj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Error() }

func (l Logger) Fatal(i ...any)                 { l.Logger.Fatal(i...) }
func (l Logger) Fatalf(format string, a ...any) { l.Logger.Fatalf(format, a...) }
func (l Logger) Fatalj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Fatal() }

func (l Logger) Panic(i ...any)                 { l.Logger.Panic(i...) }
func (l Logger) Panicf(format string, a ...any) { l.Logger.Panicf(format, a...) }
func (l Logger) Panicj(j log.JSON)              { l.Logger.WithFields(applog.Fields(j)).Panic() }
