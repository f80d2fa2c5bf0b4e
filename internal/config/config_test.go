package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply without a config file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 15*time.Second, cfg.FetchTimeout())
		require.Equal(t, 5*time.Minute, cfg.CacheTTL())
		require.True(t, cfg.Logging.Development)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
fetch:
  timeout_seconds: 30
cache:
  ttl_minutes: 10
logging:
  development: false
`), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 9090, cfg.Server.Port)
		require.Equal(t, 30*time.Second, cfg.FetchTimeout())
		require.Equal(t, 10*time.Minute, cfg.CacheTTL())
		require.False(t, cfg.Logging.Development)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server: ServerConfig{Port: 8080},
		Fetch:  FetchConfig{TimeoutSeconds: 15},
		Cache:  CacheConfig{TTLMinutes: 5},
	}
	require.NoError(t, valid.Validate())

	t.Run("rejects bad port", func(t *testing.T) {
		cfg := valid
		cfg.Server.Port = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects bad timeout", func(t *testing.T) {
		cfg := valid
		cfg.Fetch.TimeoutSeconds = -1
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects bad TTL", func(t *testing.T) {
		cfg := valid
		cfg.Cache.TTLMinutes = 0
		require.Error(t, cfg.Validate())
	})
}
