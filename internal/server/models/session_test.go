package models

import (
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{Token: "t", UserID: "u-1", ExpiresAt: now.Add(time.Minute)}

	if s.Expired(now) {
		t.Fatalf("session expiring in the future must not be expired")
	}
	if !s.Expired(now.Add(time.Minute)) {
		t.Fatalf("session is expired exactly at its expiry instant")
	}
	if !s.Expired(now.Add(2 * time.Minute)) {
		t.Fatalf("session past its expiry must be expired")
	}
}
