package log

import "github.com/sirupsen/logrus"

// NewEntryForTest 지정된 레벨과 메시지를 가진 Entry를 생성합니다.
func NewEntryForTest(level Level, msg string) *Entry {
	e := logrus.NewEntry(logrus.New())
	e.Level = level
	e.Message = msg
	return e
}
