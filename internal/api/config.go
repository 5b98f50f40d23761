package api

import (
	"os"
	"strconv"
)

// Config holds the HTTP service settings.
type Config struct {
	Addr         string
	MaxBodyBytes int64
}

// LoadConfig reads settings from the environment.
func LoadConfig() Config {
	return Config{
		Addr:         envOr("XLGRID_ADDR", ":8080"),
		MaxBodyBytes: envInt64("XLGRID_MAX_BODY_BYTES", 4*1024*1024),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
