package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration values from environment variables.
// A .env file, if any, is loaded by the entrypoint before this runs.
//
// Recognized variables:
//
//	PLATESHARE_ADDRESS      HTTP bind address
//	PLATESHARE_DATABASE_DSN PostgreSQL DSN
//	PLATESHARE_SESSION_TTL  session validity as a Go duration ("24h")
//	PLATESHARE_BCRYPT_COST  bcrypt cost (integer)
//
// Malformed values are ignored in favor of the current configuration.
func parseEnv(config *Config) {
	if v := os.Getenv("PLATESHARE_ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("PLATESHARE_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("PLATESHARE_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionValidityDuration = d
		}
	}
	if v := os.Getenv("PLATESHARE_BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = cost
		}
	}
}
