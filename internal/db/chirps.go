package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/chirpy/backend/internal/model"
)

func (db *Postgres) CreateChirp(ctx context.Context, body string, userID uuid.UUID) (*model.Chirp, error) {
	query := `
		INSERT INTO chirps (body, user_id)
		VALUES ($1, $2)
		RETURNING id, body, user_id, created_at, updated_at
	`
	var chirp model.Chirp
	err := db.Pool.QueryRow(ctx, query, body, userID).Scan(
		&chirp.ID,
		&chirp.Body,
		&chirp.UserID,
		&chirp.CreatedAt,
		&chirp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chirp, nil
}

func (db *Postgres) GetChirps(ctx context.Context, authorID *uuid.UUID, descending bool) ([]model.Chirp, error) {
	query := `
		SELECT id, body, user_id, created_at, updated_at
		FROM chirps
		WHERE ($1::uuid IS NULL OR user_id = $1)
		ORDER BY created_at ASC
	`
	if descending {
		query = `
			SELECT id, body, user_id, created_at, updated_at
			FROM chirps
			WHERE ($1::uuid IS NULL OR user_id = $1)
			ORDER BY created_at DESC
		`
	}

	rows, err := db.Pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Chirp
	for rows.Next() {
		var chirp model.Chirp
		if err := rows.Scan(&chirp.ID, &chirp.Body, &chirp.UserID, &chirp.CreatedAt, &chirp.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, chirp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Chirp{}
	}
	return list, nil
}

func (db *Postgres) GetChirpByID(ctx context.Context, chirpID uuid.UUID) (*model.Chirp, error) {
	query := `
		SELECT id, body, user_id, created_at, updated_at
		FROM chirps
		WHERE id = $1
	`
	var chirp model.Chirp
	err := db.Pool.QueryRow(ctx, query, chirpID).Scan(
		&chirp.ID,
		&chirp.Body,
		&chirp.UserID,
		&chirp.CreatedAt,
		&chirp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chirp, nil
}

func (db *Postgres) DeleteChirp(ctx context.Context, chirpID uuid.UUID) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM chirps WHERE id = $1`, chirpID)
	return err
}
