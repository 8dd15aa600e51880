package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	ServiceHost string
	ServicePort string

	// SessionSecret signs the session cookie. The process refuses to
	// start without it.
	SessionSecret string
	SessionTTL    time.Duration

	RedisHost string
	RedisPort string
}

func NewConfig() (*Config, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		ttl = parsed
	}

	return &Config{
		ServiceHost:   getEnv("SERVICE_HOST", "0.0.0.0"),
		ServicePort:   getEnv("SERVICE_PORT", "8080"),
		SessionSecret: secret,
		SessionTTL:    ttl,
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
	}, nil
}

func (c *Config) ServiceAddress() string {
	return c.ServiceHost + ":" + c.ServicePort
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
