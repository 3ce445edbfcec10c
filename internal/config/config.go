package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	// LogDir receives session log files alongside stdout. Empty logs to stdout only.
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// ItemsPath points at a JSON or YAML item catalog. Empty means every item
	// gets default metadata.
	ItemsPath string

	// Grid size used when a create request omits rows or cols
	InventoryRows int
	InventoryCols int

	StoreMaxInventories int
	StoreIdleTTL        time.Duration

	// APIKey guards /api/v1 when set. Empty leaves the API open.
	APIKey         string
	TrustedProxies []string

	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            os.Getenv(EnvLogLevel),
		LogFormat:           os.Getenv(EnvLogFormat),
		LogDir:              getEnv(EnvLogDir, ""),
		Environment:         getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:         getEnv(EnvServiceName, DefaultServiceName),
		Version:             getEnv(EnvVersion, DefaultVersion),
		ItemsPath:           getEnv(EnvItemsPath, ""),
		InventoryRows:       getEnvAsInt(EnvInventoryRows, DefaultInventoryRows),
		InventoryCols:       getEnvAsInt(EnvInventoryCols, DefaultInventoryCols),
		StoreMaxInventories: getEnvAsInt(EnvStoreMaxInventories, DefaultStoreMaxInventories),
		StoreIdleTTL:        getEnvAsDuration(EnvStoreIdleTTL, DefaultStoreIdleTTL),
		APIKey:              getEnv(EnvAPIKey, ""),
		TrustedProxies:      getEnvAsList(EnvTrustedProxies),
		RateLimitRequests:   getEnvAsInt(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:     getEnvAsDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.InventoryRows <= 0 || cfg.InventoryCols <= 0 {
		return nil, fmt.Errorf("inventory grid must be positive, got %dx%d", cfg.InventoryRows, cfg.InventoryCols)
	}
	if cfg.StoreMaxInventories <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", EnvStoreMaxInventories, cfg.StoreMaxInventories)
	}
	if cfg.RateLimitRequests <= 0 || cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d per %s", cfg.RateLimitRequests, cfg.RateLimitWindow)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to the default when the value is missing or not a number
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsList splits a comma-separated value, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
