package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/services"
	"github.com/amzproperties/amz-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// PartnerHandler handles developer/partner profile requests
type PartnerHandler struct {
	partnerService *services.PartnerService
	cfg            *config.Config
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService *services.PartnerService, cfg *config.Config) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
		cfg:            cfg,
	}
}

func parsePartnerQuery(c *gin.Context) models.PartnerQuery {
	query := models.PartnerQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return query
}

// bindPartner reads a partner from a JSON body or multipart form fields.
// Embedded projects are JSON-only.
func (h *PartnerHandler) bindPartner(c *gin.Context) (*models.Partner, error) {
	var partner models.Partner
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		partner.Name = c.PostForm("name")
		partner.Description = c.PostForm("description")
		partner.Status = c.PostForm("status")
		partner.Featured = c.PostForm("featured") == "true"
		partner.Contact.Email = c.PostForm("email")
		partner.Contact.Phone = c.PostForm("phone")
		partner.Contact.Website = c.PostForm("website")
		partner.Specialties = utils.SplitAndTrim(c.PostForm("specialties"))
		partner.Rating, _ = strconv.ParseFloat(c.PostForm("rating"), 64)

		logo, err := saveImage(c, h.cfg)
		if err != nil {
			return nil, err
		}
		partner.Logo = logo
		return &partner, nil
	}

	if err := c.ShouldBindJSON(&partner); err != nil {
		return nil, apperrors.NewValidation("invalid request body")
	}
	return &partner, nil
}

// bindPartnerUpdate reads a partial update: only fields present in the JSON
// body or multipart form are set. The form's contact fields travel together,
// so providing any of them replaces the whole contact block.
func (h *PartnerHandler) bindPartnerUpdate(c *gin.Context) (*models.PartnerUpdate, error) {
	var upd models.PartnerUpdate
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if v, ok := c.GetPostForm("name"); ok {
			upd.Name = &v
		}
		if v, ok := c.GetPostForm("description"); ok {
			upd.Description = &v
		}
		if v, ok := c.GetPostForm("status"); ok {
			upd.Status = &v
		}
		if v, ok := c.GetPostForm("featured"); ok {
			featured := v == "true"
			upd.Featured = &featured
		}
		if v, ok := c.GetPostForm("rating"); ok {
			rating, _ := strconv.ParseFloat(v, 64)
			upd.Rating = &rating
		}
		if v, ok := c.GetPostForm("specialties"); ok {
			specialties := utils.SplitAndTrim(v)
			upd.Specialties = &specialties
		}
		_, hasEmail := c.GetPostForm("email")
		_, hasPhone := c.GetPostForm("phone")
		_, hasWebsite := c.GetPostForm("website")
		if hasEmail || hasPhone || hasWebsite {
			upd.Contact = &models.PartnerContact{
				Email:   c.PostForm("email"),
				Phone:   c.PostForm("phone"),
				Website: c.PostForm("website"),
			}
		}

		logo, err := saveImage(c, h.cfg)
		if err != nil {
			return nil, err
		}
		if logo != "" {
			upd.Logo = &logo
		}
		return &upd, nil
	}

	if err := c.ShouldBindJSON(&upd); err != nil {
		return nil, apperrors.NewValidation("invalid request body")
	}
	return &upd, nil
}

// List handles GET /api/partners. Only active partners are visible publicly.
func (h *PartnerHandler) List(c *gin.Context) {
	query := parsePartnerQuery(c)
	partners, pagination, err := h.partnerService.GetActivePartners(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       partners,
		"pagination": pagination,
	})
}

// AdminList handles GET /api/admin/partners across all statuses
func (h *PartnerHandler) AdminList(c *gin.Context) {
	query := parsePartnerQuery(c)
	partners, pagination, err := h.partnerService.GetPartners(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       partners,
		"pagination": pagination,
	})
}

// GetBySlug handles GET /api/partners/slug/:slug
func (h *PartnerHandler) GetBySlug(c *gin.Context) {
	partner, err := h.partnerService.GetPartnerBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if partner.Status != models.PartnerStatusActive {
		respondError(c, apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": partner})
}

// GetByID handles GET /api/admin/partners/:id
func (h *PartnerHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": partner})
}

// Create handles POST /api/admin/partners
func (h *PartnerHandler) Create(c *gin.Context) {
	partner, err := h.bindPartner(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err = h.partnerService.CreatePartner(c.Request.Context(), partner); err != nil {
		removeImage(partner.Logo, h.cfg)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": partner})
}

// Update handles PUT /api/admin/partners/:id
func (h *PartnerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	upd, err := h.bindPartnerUpdate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	existing, err := h.partnerService.GetPartnerByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	replacedLogo := ""
	if upd.Logo != nil && *upd.Logo != existing.Logo {
		replacedLogo = existing.Logo
	}

	updated, err := h.partnerService.UpdatePartner(c.Request.Context(), id, upd)
	if err != nil {
		if upd.Logo != nil && *upd.Logo != existing.Logo {
			removeImage(*upd.Logo, h.cfg)
		}
		respondError(c, err)
		return
	}
	removeImage(replacedLogo, h.cfg)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

// Delete handles DELETE /api/admin/partners/:id
func (h *PartnerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err = h.partnerService.DeletePartner(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	removeImage(partner.Logo, h.cfg)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Partner deleted"})
}
