package config

import (
	"testing"
	"time"
)

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("PLATESHARE_ADDRESS", ":8080")
	t.Setenv("PLATESHARE_DATABASE_DSN", "postgres://env/dsn")
	t.Setenv("PLATESHARE_SESSION_TTL", "90m")
	t.Setenv("PLATESHARE_BCRYPT_COST", "4")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	if cfg.EndpointAddrHTTP != ":8080" {
		t.Fatalf("unexpected address: %q", cfg.EndpointAddrHTTP)
	}
	if cfg.DatabaseDSN != "postgres://env/dsn" {
		t.Fatalf("unexpected DSN: %q", cfg.DatabaseDSN)
	}
	if cfg.SessionValidityDuration != 90*time.Minute {
		t.Fatalf("unexpected session validity: %v", cfg.SessionValidityDuration)
	}
	if cfg.BcryptCost != 4 {
		t.Fatalf("unexpected bcrypt cost: %d", cfg.BcryptCost)
	}
}

func TestParseEnv_MalformedValuesIgnored(t *testing.T) {
	t.Setenv("PLATESHARE_SESSION_TTL", "not-a-duration")
	t.Setenv("PLATESHARE_BCRYPT_COST", "not-a-number")

	cfg := &Config{}
	cfg.LoadDefaults()
	before := *cfg
	parseEnv(cfg)

	if cfg.SessionValidityDuration != before.SessionValidityDuration {
		t.Fatalf("malformed TTL must not change config")
	}
	if cfg.BcryptCost != before.BcryptCost {
		t.Fatalf("malformed cost must not change config")
	}
}
