package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all runtime settings for the monthly forecast service.
type AppConfig struct {
	// WeatherAPIKey is the Visual Crossing credential, resolved separately
	// via ResolveAPIKey and assigned by the caller.
	WeatherAPIKey string

	// GeocoderAPIKey enables optional city-to-coordinates resolution.
	GeocoderAPIKey string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// Report cache behaviour.
	CacheTTL           time.Duration
	CacheFailures      bool
	CacheSweepInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	// Outbound request timeout: default 10 seconds.
	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Report cache: one hour TTL, successes only.
	ttlStr := getenvDefault("CACHE_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl
	cfg.CacheFailures = getenvBool("CACHE_FAILURES", false)

	sweepStr := getenvDefault("CACHE_SWEEP_INTERVAL", "15m")
	sweep, err := time.ParseDuration(sweepStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SWEEP_INTERVAL: %w", err)
	}
	cfg.CacheSweepInterval = sweep

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	}
	return def
}
