// Package config handles configuration loading for the EHR backend.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration for the service.
type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	JWTExpiry      time.Duration
	Port           string
	Environment    string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	SwaggerHost    string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DBHost:         getEnvRequired("DB_HOST"),
		DBPort:         getEnvRequired("DB_PORT"),
		DBUser:         getEnvRequired("DB_USER"),
		DBPassword:     getEnvRequired("DB_PASSWORD"),
		DBName:         getEnvRequired("DB_NAME"),
		JWTSecret:      getEnvRequired("JWT_SECRET"),
		JWTExpiry:      parseDuration(getEnv("JWT_EXPIRY", "24h"), 24*time.Hour),
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		SwaggerHost:    getEnv("SWAGGER_HOST", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
