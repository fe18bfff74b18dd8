package handler

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chirpy/backend/internal/auth"
	"github.com/chirpy/backend/internal/model"
)

type userUpgrader interface {
	UpgradeToChirpyRed(ctx context.Context, userID uuid.UUID) error
}

// PolkaWebhookHandler receives payment events from Polka, authenticated with
// a shared API key.
type PolkaWebhookHandler struct {
	svc    userUpgrader
	apiKey string
}

func NewPolkaWebhookHandler(svc userUpgrader, apiKey string) *PolkaWebhookHandler {
	return &PolkaWebhookHandler{svc: svc, apiKey: apiKey}
}

// Handle godoc
// @Summary Polka payment webhook
// @Description Upgrades a user to Chirpy Red on a user.upgraded event.
// @Tags webhooks
// @Accept json
// @Success 204
// @Failure 401,404 {object} model.ErrorResponse
// @Router /api/polka/webhooks [post]
func (h *PolkaWebhookHandler) Handle(c *gin.Context) {
	key, err := auth.GetAPIKey(c.Request.Header)
	if err != nil || subtle.ConstantTimeCompare([]byte(key), []byte(h.apiKey)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req model.PolkaWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Event != "user.upgraded" {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.svc.UpgradeToChirpyRed(c.Request.Context(), req.Data.UserID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
