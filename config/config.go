package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds service configuration
type Config struct {
	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
	MaxBodySize       int64
	HistoryFile       string
	MaxHistoryRecords int
	SettingsFile      string
}

// New creates a new configuration from environment variables
func New() *Config {
	return &Config{
		Port:              getEnv("OSCAR_PORT", "8080"),
		ReadTimeout:       getDurationEnv("OSCAR_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:      getDurationEnv("OSCAR_WRITE_TIMEOUT", 120*time.Second),
		ShutdownTimeout:   getDurationEnv("OSCAR_SHUTDOWN_TIMEOUT", 30*time.Second),
		MaxBodySize:       getInt64Env("OSCAR_MAX_BODY_SIZE", 4*1024*1024), // 4MB
		HistoryFile:       getEnv("OSCAR_HISTORY_FILE", ""),
		MaxHistoryRecords: getIntEnv("OSCAR_MAX_HISTORY_RECORDS", 50),
		SettingsFile:      getEnv("OSCAR_SETTINGS_FILE", ""),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable with a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getIntEnv gets an int environment variable with a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64Env gets an int64 environment variable with a default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
