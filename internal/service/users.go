package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/chirpy/backend/internal/auth"
	"github.com/chirpy/backend/internal/db"
	"github.com/chirpy/backend/internal/model"
)

type userStore interface {
	CreateUser(ctx context.Context, email, hashedPassword string) (*model.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, email, hashedPassword string) (*model.User, error)
	UpgradeUserToChirpyRed(ctx context.Context, userID uuid.UUID) error
	DeleteAllUsers(ctx context.Context) error
}

type UserService struct {
	repo     userStore
	platform string
}

func NewUserService(repo userStore, platform string) *UserService {
	return &UserService{repo: repo, platform: platform}
}

func (s *UserService) Create(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, email, hashed)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// Update replaces the caller's email and password. Both fields are required;
// the password is re-hashed before it is stored.
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.UpdateUser(ctx, userID, email, hashed)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpgradeToChirpyRed(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.UpgradeUserToChirpyRed(ctx, userID); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Reset wipes all users (chirps and refresh tokens cascade). Only allowed on
// the dev platform.
func (s *UserService) Reset(ctx context.Context) error {
	if s.platform != "dev" {
		return ErrForbidden
	}
	return s.repo.DeleteAllUsers(ctx)
}
