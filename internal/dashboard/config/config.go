package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server  ServerConfig
	Backend BackendConfig
	Monitor MonitorConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
}

type ServerConfig struct {
	Port             string   `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel         string   `envconfig:"LOG_LEVEL" default:"info"`
	LogFile          string   `envconfig:"LOG_FILE" default:"./log/dashboard.log"`
	CorsAllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
}

type BackendConfig struct {
	BaseURL        string        `envconfig:"BACKEND_BASE_URL" default:"http://localhost:8000"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
}

type MonitorConfig struct {
	CheckInterval    time.Duration `envconfig:"CHECK_INTERVAL" default:"30s"`
	UptimeTick       time.Duration `envconfig:"UPTIME_TICK" default:"60s"`
	AutoRefresh      bool          `envconfig:"AUTO_REFRESH" default:"true"`
	RetryMaxAttempts int           `envconfig:"RETRY_MAX_ATTEMPTS" default:"1"`
	RetryBaseDelay   time.Duration `envconfig:"RETRY_BASE_DELAY" default:"1s"`
}

// RedisConfig is optional; an empty host disables the cache probe.
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// KafkaConfig is optional; no brokers disables the queue probe and the message feed.
type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS"`
	Topic       string   `envconfig:"KAFKA_TOPIC" default:"service-messages"`
	FeedGroupID string   `envconfig:"KAFKA_FEED_GROUP_ID" default:"dashboard-feed"`
	FeedSize    int      `envconfig:"KAFKA_FEED_SIZE" default:"50"`
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
