package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"ERP_APP_NAME":     os.Getenv("ERP_APP_NAME"),
		"ERP_APP_ENV":      os.Getenv("ERP_APP_ENV"),
		"ERP_API_BASE_URL": os.Getenv("ERP_API_BASE_URL"),
		"ERP_API_TIMEOUT":  os.Getenv("ERP_API_TIMEOUT"),
		"ERP_LOG_LEVEL":    os.Getenv("ERP_LOG_LEVEL"),
		"ERP_LOG_FORMAT":   os.Getenv("ERP_LOG_FORMAT"),
		"ERP_LOG_OUTPUT":   os.Getenv("ERP_LOG_OUTPUT"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "erp-console", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stderr", cfg.Log.Output)
	})

	t.Run("loads values from environment variables with ERP prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("ERP_APP_NAME", "test-console")
		os.Setenv("ERP_API_BASE_URL", "http://erp.internal:8080/api")
		os.Setenv("ERP_API_TIMEOUT", "30s")
		os.Setenv("ERP_LOG_LEVEL", "debug")
		os.Setenv("ERP_LOG_FORMAT", "json")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-console", cfg.App.Name)
		assert.Equal(t, "http://erp.internal:8080/api", cfg.API.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.API.Timeout)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("rejects base URL without http scheme", func(t *testing.T) {
		clearEnv()
		os.Setenv("ERP_API_BASE_URL", "ftp://erp.internal/api")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http or https")
	})

	t.Run("requires https in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("ERP_APP_ENV", "production")
		os.Setenv("ERP_API_BASE_URL", "http://erp.internal/api")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "https in production")
	})

	t.Run("accepts https in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("ERP_APP_ENV", "production")
		os.Setenv("ERP_API_BASE_URL", "https://erp.example.com/api")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://erp.example.com/api", cfg.API.BaseURL)
	})
}
