// Package config assembles process configuration from the environment so
// main stays lean.
package config

import (
	"os"
	"strconv"
	"time"

	pstrings "regdesk/pkg/platform/strings"
)

// Config captures everything the server process needs at startup.
type Config struct {
	Addr        string
	PostgresDSN string
	Redis       RedisConfig
	Kafka       KafkaConfig
	JWT         JWTConfig
	Admin       AdminConfig
}

// RedisConfig controls the optional reference-data cache. An empty URL
// disables caching entirely.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CacheTTL     time.Duration
}

// KafkaConfig controls the optional audit event sink. No brokers means
// audit events are dropped.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// JWTConfig controls executive token issuance.
type JWTConfig struct {
	SigningKey string
	TTL        time.Duration
}

// AdminConfig seeds a bootstrap executive when running against the
// in-memory stores. Both fields empty disables seeding.
type AdminConfig struct {
	Username string
	Password string
}

// FromEnv builds a Config from environment variables, applying development
// defaults where safe.
func FromEnv() Config {
	return Config{
		Addr:        envOr("REGDESK_ADDR", ":8080"),
		PostgresDSN: os.Getenv("REGDESK_POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("REGDESK_REDIS_URL"),
			PoolSize:     envInt("REGDESK_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REGDESK_REDIS_MIN_IDLE", 2),
			DialTimeout:  envDuration("REGDESK_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REGDESK_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REGDESK_REDIS_WRITE_TIMEOUT", 3*time.Second),
			CacheTTL:     envDuration("REGDESK_CACHE_TTL", 5*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers: pstrings.SplitClean(os.Getenv("REGDESK_KAFKA_BROKERS")),
			Topic:   envOr("REGDESK_AUDIT_TOPIC", "regdesk.audit"),
		},
		JWT: JWTConfig{
			// Default is for development only; override in production.
			SigningKey: envOr("REGDESK_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			TTL:        envDuration("REGDESK_JWT_TTL", 12*time.Hour),
		},
		Admin: AdminConfig{
			Username: os.Getenv("REGDESK_ADMIN_USERNAME"),
			Password: os.Getenv("REGDESK_ADMIN_PASSWORD"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
