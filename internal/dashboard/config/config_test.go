package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CorsAllowOrigins)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Monitor.CheckInterval)
	assert.Equal(t, 60*time.Second, cfg.Monitor.UptimeTick)
	assert.True(t, cfg.Monitor.AutoRefresh)
	assert.Equal(t, 1, cfg.Monitor.RetryMaxAttempts)
	assert.Equal(t, "service-messages", cfg.Kafka.Topic)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "BACKEND_BASE_URL=http://gateway:8000\nCHECK_INTERVAL=15s\nKAFKA_BROKERS=kafka-1:9092,kafka-2:9092\nREDIS_HOST=redis\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"BACKEND_BASE_URL", "CHECK_INTERVAL", "KAFKA_BROKERS", "REDIS_HOST"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://gateway:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Monitor.CheckInterval)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "ten seconds")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
