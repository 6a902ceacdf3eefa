package logger

import (
	"go.uber.org/zap"
)

var Log *zap.Logger

func InitLogger() {
	var err error
	Log, err = zap.NewDevelopment()
	if err != nil {
		panic("Failed to init logger: " + err.Error())
	}
}

func SyncLogger() {
	_ = Log.Sync()
}

// InitNopLogger swaps in a no-op logger. Used by tests so handler and
// service code can log unconditionally.
func InitNopLogger() {
	Log = zap.NewNop()
}
