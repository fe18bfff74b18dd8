package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chirpy/backend/internal/auth"
	"github.com/chirpy/backend/internal/config"
	"github.com/chirpy/backend/internal/db"
	"github.com/chirpy/backend/internal/model"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 60 * 24 * time.Hour
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrMisconfigured = errors.New("config invalid")
)

type credentialStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type refreshTokenStore interface {
	CreateRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	UserForRefreshToken(ctx context.Context, token string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, token string) error
}

// AuthService implements the session lifecycle: login, access-token refresh,
// refresh-token revocation, and request authentication. Every failure on the
// authentication path collapses to ErrUnauthorized so callers cannot tell
// which check rejected them.
type AuthService struct {
	users      credentialStore
	tokens     refreshTokenStore
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(users credentialStore, tokens refreshTokenStore, cfg config.APIConfig) (*AuthService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: SECRET is required", ErrMisconfigured)
	}

	return &AuthService{
		users:      users,
		tokens:     tokens,
		secret:     []byte(cfg.Secret),
		accessTTL:  accessTokenTTL,
		refreshTTL: refreshTokenTTL,
	}, nil
}

// Login verifies the credentials and, on success, mints an access token and a
// fresh refresh token. Unknown email and wrong password are the same failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, string, error) {
	if email == "" || password == "" {
		return nil, "", "", ErrInvalidInput
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, "", "", ErrUnauthorized
		}
		return nil, "", "", err
	}

	ok, err := auth.CheckPasswordHash(password, user.HashedPassword)
	if err != nil {
		return nil, "", "", err
	}
	if !ok {
		return nil, "", "", ErrUnauthorized
	}

	accessToken, err := auth.MakeJWT(user.ID, s.accessTTL, s.secret)
	if err != nil {
		return nil, "", "", err
	}

	refreshToken, err := auth.MakeRefreshToken()
	if err != nil {
		return nil, "", "", err
	}

	if err := s.tokens.CreateRefreshToken(ctx, refreshToken, user.ID, time.Now().Add(s.refreshTTL)); err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token is not rotated; it stays valid until its own expiry or a revoke.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.UserForRefreshToken(ctx, refreshToken)
	if err != nil {
		if db.IsNoRows(err) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	return auth.MakeJWT(userID, s.accessTTL, s.secret)
}

// Revoke invalidates a refresh token. Idempotent: revoking an unknown or
// already-revoked token succeeds, so repeated client retries cannot probe
// token validity.
func (s *AuthService) Revoke(ctx context.Context, refreshToken string) error {
	return s.tokens.RevokeRefreshToken(ctx, refreshToken)
}

// Authenticate validates an access token and returns the user it was minted
// for. This is the gate every protected endpoint passes through.
func (s *AuthService) Authenticate(tokenString string) (uuid.UUID, error) {
	userID, err := auth.ValidateJWT(tokenString, s.secret)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}
