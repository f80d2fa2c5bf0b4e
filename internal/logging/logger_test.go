package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("development logger enables debug", func(t *testing.T) {
		logger, err := New(true)
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zap.DebugLevel))
		logger.Debug("dev logger ready")
	})

	t.Run("production logger keeps info and above", func(t *testing.T) {
		logger, err := New(false)
		require.NoError(t, err)
		require.False(t, logger.Core().Enabled(zap.DebugLevel))
		require.True(t, logger.Core().Enabled(zap.InfoLevel))
	})
}
