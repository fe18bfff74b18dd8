package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chirpy/backend/internal/model"
	"github.com/chirpy/backend/internal/service"
)

type stubChirpService struct {
	chirp *model.Chirp
	list  []model.Chirp
	err   error
}

func (s *stubChirpService) Create(_ context.Context, userID uuid.UUID, body string) (*model.Chirp, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Chirp{ID: uuid.New(), Body: body, UserID: userID}, nil
}

func (s *stubChirpService) List(_ context.Context, _ *uuid.UUID, _ bool) ([]model.Chirp, error) {
	return s.list, s.err
}

func (s *stubChirpService) Get(_ context.Context, _ uuid.UUID) (*model.Chirp, error) {
	return s.chirp, s.err
}

func (s *stubChirpService) Delete(_ context.Context, _, _ uuid.UUID) error {
	return s.err
}

func newChirpTestRouter(svc chirpService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChirpHandler(svc)
	r.GET("/api/chirps", h.GetChirps)
	r.GET("/api/chirps/:chirpID", h.GetChirp)
	r.POST("/api/chirps", AuthMiddleware(&stubAuthenticator{userID: userID}), h.CreateChirp)
	r.DELETE("/api/chirps/:chirpID", AuthMiddleware(&stubAuthenticator{userID: userID}), h.DeleteChirp)
	return r
}

func TestCreateChirpRequiresAuth(t *testing.T) {
	r := newChirpTestRouter(&stubChirpService{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chirps", bytes.NewBufferString(`{"body":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCreateChirpTooLongMessage(t *testing.T) {
	r := newChirpTestRouter(&stubChirpService{err: service.ErrInvalidInput}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chirps", bytes.NewBufferString(`{"body":"`+strings.Repeat("a", 141)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Chirp is too long. Max length is 140") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestGetChirpsInvalidAuthorID(t *testing.T) {
	r := newChirpTestRouter(&stubChirpService{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chirps?authorId=not-a-uuid", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetChirpUnknownID(t *testing.T) {
	r := newChirpTestRouter(&stubChirpService{err: service.ErrNotFound}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/chirps/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteChirpForbidden(t *testing.T) {
	r := newChirpTestRouter(&stubChirpService{err: service.ErrForbidden}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/chirps/"+uuid.New().String(), nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
