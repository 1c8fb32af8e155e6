package config

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.EndpointAddrHTTP != ":5555" {
		t.Fatalf("unexpected address: %q", cfg.EndpointAddrHTTP)
	}
	if cfg.DatabaseDSN == "" {
		t.Fatalf("default DSN must not be empty")
	}
	if cfg.SessionValidityDuration != 24*time.Hour {
		t.Fatalf("unexpected session validity: %v", cfg.SessionValidityDuration)
	}
	if cfg.BcryptCost != bcrypt.DefaultCost {
		t.Fatalf("unexpected bcrypt cost: %d", cfg.BcryptCost)
	}
}
