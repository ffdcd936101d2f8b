package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// componentKey 로그를 남긴 컴포넌트를 식별하는 필드 이름입니다.
const componentKey = "component"

// WithComponent component 필드가 설정된 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드가 설정된 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[componentKey] = component

	return logrus.WithFields(merged)
}

func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

func WithError(err error) *Entry {
	return logrus.WithError(err)
}

func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

func SetLevel(level Level) {
	logrus.SetLevel(level)
}

func Info(args ...any) {
	logrus.Info(args...)
}

func Infof(format string, args ...any) {
	logrus.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	logrus.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	logrus.Errorf(format, args...)
}

func Fatal(args ...any) {
	logrus.Fatal(args...)
}
