package handlers

import (
	"net/http"
	"strconv"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// TestimonialHandler handles testimonial requests
type TestimonialHandler struct {
	testimonialService *services.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(testimonialService *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
	}
}

func parseTestimonialQuery(c *gin.Context) models.TestimonialQuery {
	query := models.TestimonialQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return query
}

// List handles GET /api/testimonials. Only active entries are public.
func (h *TestimonialHandler) List(c *gin.Context) {
	query := parseTestimonialQuery(c)
	testimonials, pagination, err := h.testimonialService.GetActiveTestimonials(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       testimonials,
		"pagination": pagination,
	})
}

// AdminList handles GET /api/admin/testimonials across all statuses
func (h *TestimonialHandler) AdminList(c *gin.Context) {
	query := parseTestimonialQuery(c)
	testimonials, pagination, err := h.testimonialService.GetTestimonials(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       testimonials,
		"pagination": pagination,
	})
}

// GetByID handles GET /api/admin/testimonials/:id
func (h *TestimonialHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	testimonial, err := h.testimonialService.GetTestimonialByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": testimonial})
}

// Create handles POST /api/admin/testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		respondError(c, apperrors.NewValidation("invalid request body"))
		return
	}
	if err := h.testimonialService.CreateTestimonial(c.Request.Context(), &testimonial); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": testimonial})
}

// Update handles PUT /api/admin/testimonials/:id
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var upd models.TestimonialUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondError(c, apperrors.NewValidation("invalid request body"))
		return
	}
	updated, err := h.testimonialService.UpdateTestimonial(c.Request.Context(), id, &upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

// Delete handles DELETE /api/admin/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.testimonialService.DeleteTestimonial(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Testimonial deleted"})
}
