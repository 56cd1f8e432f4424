package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/oasgen/genapi/generator"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize int64
	InspectLimit  int
	MaxLimit      int

	// Generate tool defaults.
	DefaultSuccessType string
	DefaultErrorType   string
	StrictInterfaces   bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from GENAPI_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("GENAPI_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("GENAPI_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("GENAPI_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("GENAPI_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("GENAPI_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      int64(envInt("GENAPI_MAX_INLINE_SIZE", 10*1024*1024)),
		InspectLimit:       envInt("GENAPI_INSPECT_LIMIT", 100),
		MaxLimit:           envInt("GENAPI_MAX_LIMIT", 1000),
		DefaultSuccessType: envString("GENAPI_DEFAULT_SUCCESS_TYPE", generator.DefaultSuccessType),
		DefaultErrorType:   envString("GENAPI_DEFAULT_ERROR_TYPE", generator.DefaultErrorType),
		StrictInterfaces:   envBool("GENAPI_STRICT_INTERFACES", true),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
