package logger

import (
	"testing"

	"github.com/Laisky/zap"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/cloudsdk/common/config"
)

func TestSetupLogger(t *testing.T) {
	require.NotNil(t, Logger)

	t.Run("debug_mode_enabled", func(t *testing.T) {
		original := config.DebugEnabled
		config.DebugEnabled = true
		defer func() { config.DebugEnabled = original }()

		SetupLogger()
		Logger.Debug("test debug message", zap.String("component", "test"))
	})

	t.Run("debug_mode_disabled", func(t *testing.T) {
		original := config.DebugEnabled
		config.DebugEnabled = false
		defer func() { config.DebugEnabled = original }()

		SetupLogger()
		Logger.Info("test info message in production mode")
	})
}
