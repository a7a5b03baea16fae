package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":8181"
redis:
  addr: "localhost:6379"
  db: 2
kafka:
  brokers: ["k1:9092", "k2:9092"]
  notifications_topic: "notifications"
cache:
  query_ttl_seconds: 5
log:
  level: debug
  format: json
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8181", cfg.HTTP.Address)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "booking-events", cfg.Kafka.BookingEventsTopic)
	assert.Equal(t, "notifications", cfg.Kafka.NotificationsTopic)
	assert.Equal(t, 5, cfg.Cache.QueryTTLSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":8181"
kafka:
  brokers: ["k1:9092"]
`)
	t.Setenv("HTTP_ADDRESS", ":9999")
	t.Setenv("KAFKA_BROKERS", "a:1,b:2")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.HTTP.Address)
	assert.Equal(t, []string{"a:1", "b:2"}, cfg.Kafka.Brokers)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 30, cfg.Cache.QueryTTLSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "http: [unterminated")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config")
}
