package models

import "time"

// Session binds an opaque token to a user identity until it expires or is
// revoked. Tokens are random hex strings; nothing about the user can be
// derived from them.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
