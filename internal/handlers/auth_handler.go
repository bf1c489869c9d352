package handlers

import (
	"net/http"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/middleware"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidation("email and password are required"))
		return
	}

	token, admin, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin":   admin.Profile(),
	})
}

// Profile handles GET /api/admin/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "admin": admin.Profile()})
}

// ChangePassword handles PUT /api/admin/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidation("currentPassword and newPassword (min 8 characters) are required"))
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), admin.ID, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated"})
}
