package config

import "time"

// Environment variable names
const (
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvEnvironment         = "ENVIRONMENT"
	EnvServiceName         = "SERVICE_NAME"
	EnvVersion             = "VERSION"
	EnvItemsPath           = "ITEMS_PATH"
	EnvInventoryRows       = "INVENTORY_ROWS"
	EnvInventoryCols       = "INVENTORY_COLS"
	EnvStoreMaxInventories = "STORE_MAX_INVENTORIES"
	EnvStoreIdleTTL        = "STORE_IDLE_TTL"
	EnvAPIKey              = "API_KEY"
	EnvTrustedProxies      = "TRUSTED_PROXIES"
	EnvRateLimitRequests   = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow     = "RATE_LIMIT_WINDOW"
	EnvLogDir              = "LOG_DIR"
	EnvSchemaVersion       = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort                = "8080"
	DefaultEnvironment         = "dev"
	DefaultServiceName         = "stackgrid"
	DefaultVersion             = "dev"
	DefaultInventoryRows       = 5
	DefaultInventoryCols       = 5
	DefaultStoreMaxInventories = 1024
	DefaultStoreIdleTTL        = 30 * time.Minute
	DefaultRateLimitRequests   = 1000
	DefaultRateLimitWindow     = 5 * time.Minute

	// ConfigPathItems is the sample catalog shipped with the repository
	ConfigPathItems = "configs/items.json"
)
