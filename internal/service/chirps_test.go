package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirpy/backend/internal/model"
)

type memChirpStore struct {
	chirps map[uuid.UUID]*model.Chirp
}

func newMemChirpStore() *memChirpStore {
	return &memChirpStore{chirps: make(map[uuid.UUID]*model.Chirp)}
}

func (m *memChirpStore) CreateChirp(_ context.Context, body string, userID uuid.UUID) (*model.Chirp, error) {
	chirp := &model.Chirp{
		ID:        uuid.New(),
		Body:      body,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.chirps[chirp.ID] = chirp
	return chirp, nil
}

func (m *memChirpStore) GetChirps(_ context.Context, authorID *uuid.UUID, _ bool) ([]model.Chirp, error) {
	list := []model.Chirp{}
	for _, chirp := range m.chirps {
		if authorID == nil || chirp.UserID == *authorID {
			list = append(list, *chirp)
		}
	}
	return list, nil
}

func (m *memChirpStore) GetChirpByID(_ context.Context, chirpID uuid.UUID) (*model.Chirp, error) {
	chirp, ok := m.chirps[chirpID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return chirp, nil
}

func (m *memChirpStore) DeleteChirp(_ context.Context, chirpID uuid.UUID) error {
	delete(m.chirps, chirpID)
	return nil
}

func TestCleanBody(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no profanity",
			in:   "I had something interesting for breakfast",
			want: "I had something interesting for breakfast",
		},
		{
			name: "lowercase profanity",
			in:   "I hear Mastodon is better than Chirpy. sharbert I need to migrate",
			want: "I hear Mastodon is better than Chirpy. **** I need to migrate",
		},
		{
			name: "mixed case profanity",
			in:   "I really need a kerfuffle to go to bed sooner, Fornax !",
			want: "I really need a **** to go to bed sooner, **** !",
		},
		{
			name: "punctuation attached is not masked",
			in:   "Sharbert!",
			want: "Sharbert!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanBody(tt.in))
		})
	}
}

func TestCreateChirpTooLong(t *testing.T) {
	svc := NewChirpService(newMemChirpStore())

	_, err := svc.Create(context.Background(), uuid.New(), strings.Repeat("a", 141))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateChirpCleansBody(t *testing.T) {
	svc := NewChirpService(newMemChirpStore())
	userID := uuid.New()

	chirp, err := svc.Create(context.Background(), userID, "sharbert is a word")
	require.NoError(t, err)
	assert.Equal(t, "**** is a word", chirp.Body)
	assert.Equal(t, userID, chirp.UserID)
}

func TestDeleteChirpAuthorOnly(t *testing.T) {
	store := newMemChirpStore()
	svc := NewChirpService(store)
	author := uuid.New()

	chirp, err := svc.Create(context.Background(), author, "mine")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.New(), chirp.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), author, chirp.ID))

	err = svc.Delete(context.Background(), author, chirp.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
