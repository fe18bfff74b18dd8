package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chirpy/backend/internal/model"
	"github.com/chirpy/backend/internal/service"
)

type chirpService interface {
	Create(ctx context.Context, userID uuid.UUID, body string) (*model.Chirp, error)
	List(ctx context.Context, authorID *uuid.UUID, descending bool) ([]model.Chirp, error)
	Get(ctx context.Context, chirpID uuid.UUID) (*model.Chirp, error)
	Delete(ctx context.Context, userID, chirpID uuid.UUID) error
}

type ChirpHandler struct {
	svc chirpService
}

func NewChirpHandler(svc chirpService) *ChirpHandler {
	return &ChirpHandler{svc: svc}
}

// CreateChirp godoc
// @Summary Post a chirp as the authenticated user
// @Tags chirps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateChirpRequest true "Chirp body, at most 140 characters"
// @Success 201 {object} model.ChirpResponse
// @Failure 400,401,500 {object} model.ErrorResponse
// @Router /api/chirps [post]
func (h *ChirpHandler) CreateChirp(c *gin.Context) {
	userID, ok := AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req model.CreateChirpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	chirp, err := h.svc.Create(c.Request.Context(), userID, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Chirp is too long. Max length is 140"})
			return
		}
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewChirpResponse(chirp))
}

// GetChirps godoc
// @Summary List chirps, oldest first
// @Tags chirps
// @Produce json
// @Param authorId query string false "Filter by author ID"
// @Param sort query string false "asc (default) or desc"
// @Success 200 {array} model.ChirpResponse
// @Failure 400,500 {object} model.ErrorResponse
// @Router /api/chirps [get]
func (h *ChirpHandler) GetChirps(c *gin.Context) {
	var authorID *uuid.UUID
	if raw := c.Query("authorId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid authorId"})
			return
		}
		authorID = &parsed
	}

	chirps, err := h.svc.List(c.Request.Context(), authorID, c.Query("sort") == "desc")
	if err != nil {
		writeServiceError(c, err)
		return
	}

	list := make([]model.ChirpResponse, 0, len(chirps))
	for i := range chirps {
		list = append(list, model.NewChirpResponse(&chirps[i]))
	}
	c.JSON(http.StatusOK, list)
}

// GetChirp godoc
// @Summary Get a chirp by ID
// @Tags chirps
// @Produce json
// @Param chirpID path string true "Chirp ID"
// @Success 200 {object} model.ChirpResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/chirps/{chirpID} [get]
func (h *ChirpHandler) GetChirp(c *gin.Context) {
	chirpID, err := uuid.Parse(c.Param("chirpID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chirp not found"})
		return
	}

	chirp, err := h.svc.Get(c.Request.Context(), chirpID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chirp not found"})
			return
		}
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewChirpResponse(chirp))
}

// DeleteChirp godoc
// @Summary Delete one of the authenticated user's chirps
// @Tags chirps
// @Security BearerAuth
// @Param chirpID path string true "Chirp ID"
// @Success 204
// @Failure 401,403,404 {object} model.ErrorResponse
// @Router /api/chirps/{chirpID} [delete]
func (h *ChirpHandler) DeleteChirp(c *gin.Context) {
	userID, ok := AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	chirpID, err := uuid.Parse(c.Param("chirpID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chirp not found"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, chirpID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
