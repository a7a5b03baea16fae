package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	GRPC  GRPCConfig  `yaml:"grpc"`
	Redis RedisConfig `yaml:"redis"`
	Kafka KafkaConfig `yaml:"kafka"`
	Cache CacheConfig `yaml:"cache"`
	Log   LogConfig   `yaml:"log"`
}

type HTTPConfig struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS"`
}

type GRPCConfig struct {
	Address string `yaml:"address" env:"GRPC_ADDRESS"`
}

// RedisConfig enables the query cache when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

// KafkaConfig enables booking events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
	BookingEventsTopic string   `yaml:"booking_events_topic" env:"KAFKA_BOOKING_EVENTS_TOPIC"`
	NotificationsTopic string   `yaml:"notifications_topic" env:"KAFKA_NOTIFICATIONS_TOPIC"`
	GroupID            string   `yaml:"group_id" env:"KAFKA_GROUP_ID"`
}

type CacheConfig struct {
	QueryTTLSeconds int `yaml:"query_ttl_seconds" env:"CACHE_QUERY_TTL_SECONDS"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// LoadConfig reads the yaml file at path, applies environment overrides and
// fills defaults. A missing file is not an error; the environment and
// defaults are enough to start.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Kafka.BookingEventsTopic == "" {
		c.Kafka.BookingEventsTopic = "booking-events"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "airport-registry-worker"
	}
	if c.Cache.QueryTTLSeconds <= 0 {
		c.Cache.QueryTTLSeconds = 30
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}
