// Package models holds the domain entities. Validation runs inside the
// constructors and setters, so an invalid entity cannot be built and
// therefore cannot reach the persistence layer.
package models

import (
	"strings"
	"time"

	"github.com/plateshare/plateshare/internal/common"
	"github.com/plateshare/plateshare/internal/server/auth"
)

// DefaultImageURL is assigned when a user signs up without an avatar.
const DefaultImageURL = "https://via.placeholder.com/150"

// User is a registered account. The password digest is write-only: it is
// set through NewUser/SetPassword, checked through Authenticate, and never
// readable as a password.
type User struct {
	ID        string
	Username  string
	Bio       string
	ImageURL  string
	CreatedAt time.Time

	digest auth.Digest
}

// UserView is the outward JSON shape of a user. Credential material and the
// owned-recipes back-reference are excluded.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio,omitempty"`
	ImageURL string `json:"image_url"`
}

// NewUser validates the fields and returns a User with its password digest
// set. The first failing rule determines the returned error (username, then
// password). A missing image URL falls back to DefaultImageURL.
func NewUser(username, password, bio, imageURL string, cost int) (*User, error) {
	u := &User{Bio: bio, ImageURL: imageURL}
	if err := u.SetUsername(username); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password, cost); err != nil {
		return nil, err
	}
	if u.ImageURL == "" {
		u.ImageURL = DefaultImageURL
	}
	return u, nil
}

// RestoreUser rebuilds a previously validated User from stored state. It is
// meant for the persistence layer and bypasses validation.
func RestoreUser(id, username string, digest auth.Digest, bio, imageURL string, createdAt time.Time) *User {
	return &User{
		ID:        id,
		Username:  username,
		Bio:       bio,
		ImageURL:  imageURL,
		CreatedAt: createdAt,
		digest:    digest,
	}
}

// SetUsername validates and assigns the username. Whitespace-only names are
// rejected.
func (u *User) SetUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return common.NewValidationError("Username must be present")
	}
	u.Username = username
	return nil
}

// SetPassword hashes the plaintext and stores only the digest.
func (u *User) SetPassword(plaintext string, cost int) error {
	d, err := auth.HashPassword(plaintext, cost)
	if err != nil {
		return err
	}
	u.digest = d
	return nil
}

// Password always fails with common.ErrPasswordWriteOnly: plaintext
// passwords are never stored, and the digest is not readable through the
// entity. This keeps credentials out of any serialization path.
func (u *User) Password() (string, error) {
	return "", common.ErrPasswordWriteOnly
}

// Authenticate reports whether plaintext matches the stored digest. A user
// without a digest never authenticates.
func (u *User) Authenticate(plaintext string) bool {
	return u.digest.Verify(plaintext)
}

// CredentialDigest exposes the opaque digest for the persistence layer.
// The digest can only be compared, never reversed; it must not appear in
// any public view.
func (u *User) CredentialDigest() auth.Digest {
	return u.digest
}

// PublicView returns the externally safe subset of the user's fields.
func (u *User) PublicView() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		ImageURL: u.ImageURL,
	}
}
