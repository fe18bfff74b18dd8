package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

func (db *Postgres) CreateRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`
	_, err := db.Pool.Exec(ctx, query, token, userID, expiresAt)
	return err
}

// UserForRefreshToken resolves a refresh token to its owner. Unknown, revoked
// and expired tokens are indistinguishable: all surface as pgx.ErrNoRows.
func (db *Postgres) UserForRefreshToken(ctx context.Context, token string) (uuid.UUID, error) {
	query := `
		SELECT user_id
		FROM refresh_tokens
		WHERE token = $1 AND revoked_at IS NULL AND expires_at > NOW()
	`
	var userID uuid.UUID
	if err := db.Pool.QueryRow(ctx, query, token).Scan(&userID); err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

// RevokeRefreshToken marks the token revoked. The write is a single UPDATE so
// a concurrent resolve sees it fully applied or not at all. Revoking an
// already-revoked or unknown token affects zero rows, which is fine.
func (db *Postgres) RevokeRefreshToken(ctx context.Context, token string) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW(), updated_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL
	`
	_, err := db.Pool.Exec(ctx, query, token)
	return err
}
