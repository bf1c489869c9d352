package handlers

import (
	"net/http"
	"strconv"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact form and inbox requests
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidation("name, email and message are required"))
		return
	}
	contact, err := h.contactService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for your inquiry. We will get back to you shortly.",
		"data":    contact,
	})
}

// List handles GET /api/admin/contacts
func (h *ContactHandler) List(c *gin.Context) {
	query := models.ContactQuery{
		Status:      c.Query("status"),
		InquiryType: c.Query("inquiryType"),
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	contacts, pagination, err := h.contactService.GetContacts(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       contacts,
		"pagination": pagination,
	})
}

// GetByID handles GET /api/admin/contacts/:id
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contact, err := h.contactService.GetContactByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": contact})
}

// UpdateStatus handles PUT /api/admin/contacts/:id/status
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidation("status is required"))
		return
	}
	contact, err := h.contactService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": contact})
}

// UpdateMessage handles PUT /api/admin/contacts/:id
func (h *ContactHandler) UpdateMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidation("message is required"))
		return
	}
	contact, err := h.contactService.UpdateMessage(c.Request.Context(), id, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": contact})
}

// Delete handles DELETE /api/admin/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contactService.DeleteContact(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact deleted"})
}

// Stats handles GET /api/admin/contacts/stats/summary
func (h *ContactHandler) Stats(c *gin.Context) {
	stats, err := h.contactService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
