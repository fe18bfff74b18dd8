package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chirpy/backend/internal/model"
)

type userService interface {
	Create(ctx context.Context, email, password string) (*model.User, error)
	Update(ctx context.Context, userID uuid.UUID, email, password string) (*model.User, error)
	Reset(ctx context.Context) error
}

type UserHandler struct {
	svc     userService
	metrics *Metrics
}

func NewUserHandler(svc userService, metrics *Metrics) *UserHandler {
	return &UserHandler{svc: svc, metrics: metrics}
}

// CreateUser godoc
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "Email and password"
// @Success 201 {object} model.UserResponse
// @Failure 400,409,500 {object} model.ErrorResponse
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	user, err := h.svc.Create(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewUserResponse(user))
}

// UpdateUser godoc
// @Summary Update the authenticated user's email and password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateUserRequest true "New email and password"
// @Success 200 {object} model.UserResponse
// @Failure 400,401,500 {object} model.ErrorResponse
// @Router /api/users [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.svc.Update(c.Request.Context(), userID, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewUserResponse(user))
}

// Reset godoc
// @Summary Delete all users and reset the hit counter (dev only)
// @Tags admin
// @Produce plain
// @Success 200 {string} string
// @Failure 403 {object} model.ErrorResponse
// @Router /admin/reset [post]
func (h *UserHandler) Reset(c *gin.Context) {
	if err := h.svc.Reset(c.Request.Context()); err != nil {
		writeServiceError(c, err)
		return
	}

	h.metrics.Reset()
	c.String(http.StatusOK, "fileserver hits reset to 0 and users deleted")
}
