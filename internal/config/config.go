package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Backends BackendsConfig
	Redis    RedisConfig
	NewRelic NewRelicConfig
	Session  SessionConfig
	Workflow WorkflowConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// BackendsConfig holds the base URLs of the backend services the
// gateway calls.
type BackendsConfig struct {
	CoreBaseURL    string
	TripBaseURL    string
	BookingBaseURL string
	Timeout        time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRelicConfig holds New Relic configuration.
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// SessionConfig holds session lifetime configuration.
type SessionConfig struct {
	TTL time.Duration
}

// WorkflowConfig holds workflow instance lifetime configuration.
type WorkflowConfig struct {
	IdleTTL time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Backends: BackendsConfig{
			CoreBaseURL:    getEnv("CORE_SERVICE_BASE_URL", "https://api.busriya.com/core-service/v2.0"),
			TripBaseURL:    getEnv("TRIP_SERVICE_BASE_URL", "https://api.busriya.com/trip-service/v1.3"),
			BookingBaseURL: getEnv("BOOKING_SERVICE_BASE_URL", "https://api.busriya.com/booking-service/v1.7"),
			Timeout:        getDurationEnv("BACKEND_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "busriya-gateway"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    getBoolEnv("NEW_RELIC_ENABLED", false),
		},
		Session: SessionConfig{
			TTL: getDurationEnv("SESSION_TTL", 12*time.Hour),
		},
		Workflow: WorkflowConfig{
			IdleTTL: getDurationEnv("WORKFLOW_IDLE_TTL", 30*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
