package api

import (
	"io"
	"testing"

	applog "github.com/darkkaiser/shop-server/pkg/log"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	applog.SetOutput(io.Discard)

	goleak.VerifyTestMain(m)
}
