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

// PropertyHandler handles property listing requests
type PropertyHandler struct {
	propertyService *services.PropertyService
	cfg             *config.Config
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *services.PropertyService, cfg *config.Config) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		cfg:             cfg,
	}
}

func parsePropertyQuery(c *gin.Context) models.PropertyQuery {
	query := models.PropertyQuery{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Location: c.Query("location"),
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	query.MinPrice, _ = strconv.ParseFloat(c.Query("minPrice"), 64)
	query.MaxPrice, _ = strconv.ParseFloat(c.Query("maxPrice"), 64)
	query.Bedrooms, _ = strconv.Atoi(c.Query("bedrooms"))
	if featured := c.Query("featured"); featured != "" {
		value := featured == "true"
		query.Featured = &value
	}
	return query
}

// bindProperty reads a property from a JSON body or multipart form fields
func (h *PropertyHandler) bindProperty(c *gin.Context) (*models.Property, error) {
	var property models.Property
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		property.Title = c.PostForm("title")
		property.Description = c.PostForm("description")
		property.Location = c.PostForm("location")
		property.Type = c.PostForm("type")
		property.Status = c.PostForm("status")
		property.Developer = c.PostForm("developer")
		property.Price, _ = strconv.ParseFloat(c.PostForm("price"), 64)
		property.Area, _ = strconv.ParseFloat(c.PostForm("area"), 64)
		property.Bedrooms, _ = strconv.Atoi(c.PostForm("bedrooms"))
		property.Bathrooms, _ = strconv.Atoi(c.PostForm("bathrooms"))
		property.YearBuilt, _ = strconv.Atoi(c.PostForm("yearBuilt"))
		property.Featured = c.PostForm("featured") == "true"
		property.Features = utils.SplitAndTrim(c.PostForm("features"))

		image, err := saveImage(c, h.cfg)
		if err != nil {
			return nil, err
		}
		property.Image = image
		return &property, nil
	}

	if err := c.ShouldBindJSON(&property); err != nil {
		return nil, apperrors.NewValidation("invalid request body")
	}
	return &property, nil
}

// bindPropertyUpdate reads a partial update: only fields present in the JSON
// body or multipart form are set.
func (h *PropertyHandler) bindPropertyUpdate(c *gin.Context) (*models.PropertyUpdate, error) {
	var upd models.PropertyUpdate
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if v, ok := c.GetPostForm("title"); ok {
			upd.Title = &v
		}
		if v, ok := c.GetPostForm("description"); ok {
			upd.Description = &v
		}
		if v, ok := c.GetPostForm("location"); ok {
			upd.Location = &v
		}
		if v, ok := c.GetPostForm("type"); ok {
			upd.Type = &v
		}
		if v, ok := c.GetPostForm("status"); ok {
			upd.Status = &v
		}
		if v, ok := c.GetPostForm("developer"); ok {
			upd.Developer = &v
		}
		if v, ok := c.GetPostForm("price"); ok {
			price, _ := strconv.ParseFloat(v, 64)
			upd.Price = &price
		}
		if v, ok := c.GetPostForm("area"); ok {
			area, _ := strconv.ParseFloat(v, 64)
			upd.Area = &area
		}
		if v, ok := c.GetPostForm("bedrooms"); ok {
			bedrooms, _ := strconv.Atoi(v)
			upd.Bedrooms = &bedrooms
		}
		if v, ok := c.GetPostForm("bathrooms"); ok {
			bathrooms, _ := strconv.Atoi(v)
			upd.Bathrooms = &bathrooms
		}
		if v, ok := c.GetPostForm("yearBuilt"); ok {
			yearBuilt, _ := strconv.Atoi(v)
			upd.YearBuilt = &yearBuilt
		}
		if v, ok := c.GetPostForm("featured"); ok {
			featured := v == "true"
			upd.Featured = &featured
		}
		if v, ok := c.GetPostForm("features"); ok {
			features := utils.SplitAndTrim(v)
			upd.Features = &features
		}

		image, err := saveImage(c, h.cfg)
		if err != nil {
			return nil, err
		}
		if image != "" {
			upd.Image = &image
		}
		return &upd, nil
	}

	if err := c.ShouldBindJSON(&upd); err != nil {
		return nil, apperrors.NewValidation("invalid request body")
	}
	return &upd, nil
}

// List handles GET /api/properties. Public listings default to available.
func (h *PropertyHandler) List(c *gin.Context) {
	query := parsePropertyQuery(c)
	if query.Status == "" {
		query.Status = models.PropertyStatusAvailable
	}
	h.respondList(c, query)
}

// AdminList handles GET /api/admin/properties with no default status filter
func (h *PropertyHandler) AdminList(c *gin.Context) {
	h.respondList(c, parsePropertyQuery(c))
}

func (h *PropertyHandler) respondList(c *gin.Context, query models.PropertyQuery) {
	properties, pagination, err := h.propertyService.GetProperties(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       properties,
		"pagination": pagination,
	})
}

// GetByID handles GET /api/properties/:id
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	property, err := h.propertyService.GetPropertyByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": property})
}

// Featured handles GET /api/properties/featured/list
func (h *PropertyHandler) Featured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	properties, err := h.propertyService.GetFeaturedProperties(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": properties})
}

// Search handles GET /api/properties/search/query?q=
func (h *PropertyHandler) Search(c *gin.Context) {
	query := parsePropertyQuery(c)
	query.Search = c.Query("q")
	if query.Search == "" {
		respondError(c, apperrors.NewValidation("query parameter q is required"))
		return
	}
	if query.Status == "" {
		query.Status = models.PropertyStatusAvailable
	}
	h.respondList(c, query)
}

// Create handles POST /api/admin/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	property, err := h.bindProperty(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err = h.propertyService.CreateProperty(c.Request.Context(), property); err != nil {
		removeImage(property.Image, h.cfg)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": property})
}

// Update handles PUT /api/admin/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	upd, err := h.bindPropertyUpdate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	existing, err := h.propertyService.GetPropertyByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	replacedImage := ""
	if upd.Image != nil && *upd.Image != existing.Image {
		replacedImage = existing.Image
	}

	updated, err := h.propertyService.UpdateProperty(c.Request.Context(), id, upd)
	if err != nil {
		if upd.Image != nil && *upd.Image != existing.Image {
			removeImage(*upd.Image, h.cfg)
		}
		respondError(c, err)
		return
	}
	removeImage(replacedImage, h.cfg)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

// Delete handles DELETE /api/admin/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	property, err := h.propertyService.GetPropertyByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err = h.propertyService.DeleteProperty(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	removeImage(property.Image, h.cfg)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Property deleted"})
}
