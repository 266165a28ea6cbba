package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	RemoteDriverNone     = "none"
	RemoteDriverDynamoDB = "dynamodb"
	RemoteDriverPostgres = "postgres"
)

// Config is read once at startup. A .env file is loaded by godotenv/autoload
// in main before anything here runs.
//
// Supported env vars:
//   - HTTP_PORT (default: 8080)
//   - QUOTE_LOCAL_CACHE_PATH (default: data/quotations.db; "memory" keeps the cache in process)
//   - QUOTE_REMOTE_DRIVER (none | dynamodb | postgres; default: dynamodb)
//   - QUOTATIONS_TABLE (default: quotations)
//   - DATABASE_URL (required when the remote driver is postgres)
//   - QUOTE_MAX_QUANTITY (default: 50)
//   - QUOTE_VALIDITY_DAYS (default: 30)
//   - QUOTE_NUMBER_PREFIX (default: QT)
type Config struct {
	HTTPPort       int
	LocalCachePath string
	RemoteDriver   string
	TableName      string
	DatabaseURL    string
	MaxQuantity    int
	ValidityDays   int
	NumberPrefix   string
}

func Load() Config {
	cfg := Config{
		HTTPPort:       getenvInt("HTTP_PORT", 8080),
		LocalCachePath: getenvDefault("QUOTE_LOCAL_CACHE_PATH", "data/quotations.db"),
		RemoteDriver:   strings.ToLower(getenvDefault("QUOTE_REMOTE_DRIVER", RemoteDriverDynamoDB)),
		TableName:      getenvDefault("QUOTATIONS_TABLE", "quotations"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MaxQuantity:    getenvInt("QUOTE_MAX_QUANTITY", 50),
		ValidityDays:   getenvInt("QUOTE_VALIDITY_DAYS", 30),
		NumberPrefix:   getenvDefault("QUOTE_NUMBER_PREFIX", "QT"),
	}
	switch cfg.RemoteDriver {
	case RemoteDriverNone, RemoteDriverDynamoDB, RemoteDriverPostgres:
	default:
		log.Printf("[config] unknown QUOTE_REMOTE_DRIVER=%s, remote sync disabled", cfg.RemoteDriver)
		cfg.RemoteDriver = RemoteDriverNone
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
