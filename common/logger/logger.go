package logger

import (
	"fmt"
	"os"
	"sync"

	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"

	"github.com/Laisky/cloudsdk/common/config"
)

var (
	Logger      glog.Logger
	initLogOnce sync.Once
)

// init initializes the logger automatically when the package is imported
func init() {
	initLogger()
}

func initLogger() {
	initLogOnce.Do(func() {
		var err error
		level := glog.LevelInfo
		if config.DebugEnabled {
			level = glog.LevelDebug
		}

		Logger, err = glog.NewConsoleWithName("cloudsdk", level)
		if err != nil {
			panic(fmt.Sprintf("failed to create logger: %+v", err))
		}
	})
}

// SetupLogger tags the process logger with the host name and applies the
// configured level. Binaries call it once at startup; library users may skip it.
func SetupLogger() {
	hostname, err := os.Hostname()
	if err != nil {
		Logger.Warn("get hostname", zap.Error(err))
		hostname = "unknown"
	}

	Logger = Logger.With(zap.String("host", hostname))
	if config.DebugEnabled {
		_ = Logger.ChangeLevel("debug")
		Logger.Debug("running in debug mode")
	} else {
		_ = Logger.ChangeLevel("info")
	}
}
