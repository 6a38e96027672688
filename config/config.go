// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int
}

func Load() *Config {
	rateLimit, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120"))
	burst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/motogarage?charset=utf8mb4&parseTime=True&loc=Local"),

		RateLimitPerMinute: rateLimit,
		RateLimitBurst:     burst,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
