package server

import (
	"os"
	"time"
)

// Config holds the dashboard configuration, loaded from environment variables.
type Config struct {
	Addr              string
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

const (
	defaultAddr              = ":8080"
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

// LoadConfig reads the configuration from the environment, applying defaults
// where necessary.
func LoadConfig() Config {
	return Config{
		Addr:              getEnv("ERT_ADDR", defaultAddr),
		ShutdownTimeout:   getDuration("ERT_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ReadHeaderTimeout: getDuration("ERT_READ_HEADER_TIMEOUT", defaultReadHeaderTimeout),
	}
}

func getEnv(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
