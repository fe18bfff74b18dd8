package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chirpy/backend/internal/model"
)

func (db *Postgres) CreateUser(ctx context.Context, email, hashedPassword string) (*model.User, error) {
	query := `
		INSERT INTO users (email, hashed_password)
		VALUES ($1, $2)
		RETURNING id, email, hashed_password, is_chirpy_red, created_at, updated_at
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, email, hashedPassword).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.IsChirpyRed,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, email, hashed_password, is_chirpy_red, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.IsChirpyRed,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) UpdateUser(ctx context.Context, userID uuid.UUID, email, hashedPassword string) (*model.User, error) {
	query := `
		UPDATE users
		SET email = $2, hashed_password = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, email, hashed_password, is_chirpy_red, created_at, updated_at
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, userID, email, hashedPassword).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.IsChirpyRed,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) UpgradeUserToChirpyRed(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET is_chirpy_red = TRUE, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := db.Pool.Exec(ctx, query, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) DeleteAllUsers(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM users`)
	return err
}
