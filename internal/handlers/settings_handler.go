package handlers

import (
	"net/http"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles site settings requests
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Get handles GET /api/settings and GET /api/admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// Update handles PUT /api/admin/settings with a per-section shallow merge
func (h *SettingsHandler) Update(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperrors.NewValidation("invalid request body"))
		return
	}
	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// UpdateSection handles PATCH /api/admin/settings/:section
func (h *SettingsHandler) UpdateSection(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondError(c, apperrors.NewValidation("invalid request body"))
		return
	}
	settings, err := h.settingsService.UpdateSection(c.Request.Context(), c.Param("section"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// Reset handles POST /api/admin/settings/reset
func (h *SettingsHandler) Reset(c *gin.Context) {
	settings, err := h.settingsService.ResetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}
