package handlers

import (
	"net/http"
	"strconv"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// WishlistHandler handles wishlist requests
type WishlistHandler struct {
	wishlistService *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// Add handles POST /api/wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	var req models.WishlistAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidation("sessionId, itemId and itemType are required"))
		return
	}
	item, err := h.wishlistService.AddItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// GetSession handles GET /api/wishlist/:sessionId
func (h *WishlistHandler) GetSession(c *gin.Context) {
	items, err := h.wishlistService.GetSessionItems(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "count": len(items)})
}

// Remove handles DELETE /api/wishlist/:sessionId/:itemId?type=
func (h *WishlistHandler) Remove(c *gin.Context) {
	err := h.wishlistService.RemoveItem(c.Request.Context(), c.Param("sessionId"), c.Param("itemId"), c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from wishlist"})
}

// AdminList handles GET /api/admin/wishlist/all
func (h *WishlistHandler) AdminList(c *gin.Context) {
	query := models.WishlistQuery{
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, pagination, err := h.wishlistService.GetItems(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       items,
		"pagination": pagination,
	})
}

// Stats handles GET /api/admin/wishlist/stats
func (h *WishlistHandler) Stats(c *gin.Context) {
	stats, err := h.wishlistService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// Analytics handles GET /api/admin/wishlist/analytics?period=
func (h *WishlistHandler) Analytics(c *gin.Context) {
	analytics, err := h.wishlistService.GetAnalytics(c.Request.Context(), c.DefaultQuery("period", "7d"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": analytics})
}

// AdminRemove handles DELETE /api/admin/wishlist/:id
func (h *WishlistHandler) AdminRemove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.wishlistService.RemoveByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Wishlist entry removed"})
}

// ClearSession handles DELETE /api/admin/wishlist/session/:sessionId
func (h *WishlistHandler) ClearSession(c *gin.Context) {
	removed, err := h.wishlistService.ClearSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
}
