package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/chirpy/backend/internal/db"
	"github.com/chirpy/backend/internal/model"
)

const maxChirpLength = 140

var profaneWords = map[string]struct{}{
	"kerfuffle": {},
	"sharbert":  {},
	"fornax":    {},
}

type chirpStore interface {
	CreateChirp(ctx context.Context, body string, userID uuid.UUID) (*model.Chirp, error)
	GetChirps(ctx context.Context, authorID *uuid.UUID, descending bool) ([]model.Chirp, error)
	GetChirpByID(ctx context.Context, chirpID uuid.UUID) (*model.Chirp, error)
	DeleteChirp(ctx context.Context, chirpID uuid.UUID) error
}

type ChirpService struct {
	repo chirpStore
}

func NewChirpService(repo chirpStore) *ChirpService {
	return &ChirpService{repo: repo}
}

func (s *ChirpService) Create(ctx context.Context, userID uuid.UUID, body string) (*model.Chirp, error) {
	if body == "" || len(body) > maxChirpLength {
		return nil, ErrInvalidInput
	}

	return s.repo.CreateChirp(ctx, cleanBody(body), userID)
}

func (s *ChirpService) List(ctx context.Context, authorID *uuid.UUID, descending bool) ([]model.Chirp, error) {
	return s.repo.GetChirps(ctx, authorID, descending)
}

func (s *ChirpService) Get(ctx context.Context, chirpID uuid.UUID) (*model.Chirp, error) {
	chirp, err := s.repo.GetChirpByID(ctx, chirpID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return chirp, nil
}

// Delete removes a chirp. Only the author may delete it; a missing chirp is
// ErrNotFound, someone else's chirp is ErrForbidden.
func (s *ChirpService) Delete(ctx context.Context, userID, chirpID uuid.UUID) error {
	chirp, err := s.Get(ctx, chirpID)
	if err != nil {
		return err
	}
	if chirp.UserID != userID {
		return ErrForbidden
	}
	return s.repo.DeleteChirp(ctx, chirpID)
}

// cleanBody masks profane words. Matching is case-insensitive but whole-word
// only: a profane word with punctuation attached passes through untouched.
func cleanBody(body string) string {
	words := strings.Split(body, " ")
	for i, word := range words {
		if _, ok := profaneWords[strings.ToLower(word)]; ok {
			words[i] = "****"
		}
	}
	return strings.Join(words, " ")
}
