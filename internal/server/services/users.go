package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/plateshare/plateshare/internal/common"
	"github.com/plateshare/plateshare/internal/dbx"
	"github.com/plateshare/plateshare/internal/server/config"
	"github.com/plateshare/plateshare/internal/server/models"
	"github.com/plateshare/plateshare/internal/server/repositories/repomanager"
)

// AuthResult is returned by the operations that establish a session. It
// couples the authenticated user with the opaque token the transport layer
// hands to the client.
type AuthResult struct {
	User  *models.User
	Token string
}

type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	sessionValidityDuration time.Duration
	bcryptCost              int
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		sessionValidityDuration: cfg.SessionValidityDuration,
		bcryptCost:              cfg.BcryptCost,
	}
}

// Signup creates a new account and immediately issues a session for it.
// Validation failures and duplicate usernames come back as
// common.ValidationError; the duplicate case relies on the unique index,
// so two racing signups for the same username resolve to exactly one win.
func (s *UserService) Signup(ctx context.Context, username, password, bio, imageURL string) (*AuthResult, error) {

	user, err := models.NewUser(username, password, bio, imageURL, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	// Fast-path check. The unique index remains the source of truth for
	// racing signups; this only gives a cheaper answer in the common case.
	_, err = s.repomanager.Users(s.db).GetByUsername(ctx, user.Username)
	if err == nil {
		return nil, common.NewValidationError("Username already exists")
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	var result *AuthResult

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}

		token, err := s.issueSession(ctx, tx, created.ID)
		if err != nil {
			return err
		}

		result = &AuthResult{User: created, Token: token}
		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.NewValidationError("Username already exists")
		}
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return result, nil
}

// Login verifies the credentials and issues a fresh session. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*AuthResult, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !user.Authenticate(password) {
		return nil, common.ErrorUnauthorized
	}

	token, err := s.issueSession(ctx, s.db, user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{User: user, Token: token}, nil
}

// CurrentUser resolves a session token to its user. A missing or unknown
// token yields common.ErrorUnauthorized, an expired one
// common.ErrSessionExpired; a valid token whose user has since been
// deleted yields common.ErrorNotFound so the transport can distinguish
// the cases.
func (s *UserService) CurrentUser(ctx context.Context, token string) (*models.User, error) {

	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	session, err := s.repomanager.Sessions(s.db).Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if session.Expired(time.Now()) {
		return nil, common.ErrSessionExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Logout invalidates the session token. Logging out twice with the same
// token fails the second time.
func (s *UserService) Logout(ctx context.Context, token string) error {

	if token == "" {
		return common.ErrorUnauthorized
	}

	err := s.repomanager.Sessions(s.db).Delete(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}

	return nil
}

// DeleteUser removes the account together with its recipes and sessions
// in a single transaction.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Recipes(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := s.repomanager.Sessions(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Delete(ctx, userID)
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}

func (s *UserService) issueSession(ctx context.Context, db dbx.DBTX, userID string) (string, error) {
	token, err := common.MakeRandHexString(32)
	if err != nil {
		return "", err
	}

	err = s.repomanager.Sessions(db).Create(ctx, userID, token, s.sessionValidityDuration)
	if err != nil {
		return "", err
	}

	return token, nil
}
