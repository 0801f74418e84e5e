package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	JWTSecret string

	GoEnv    string // dev/prod
	LogLevel string

	// Interval for the overdue commission sweep, e.g. "10m".
	SweepInterval string
}

func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		GoEnv:         getenv("GO_ENV", "dev"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		SweepInterval: getenv("COMMISSION_SWEEP_INTERVAL", "10m"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
