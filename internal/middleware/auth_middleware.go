package middleware

import (
	"net/http"
	"strings"

	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"github.com/amzproperties/amz-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminKey is the context key the auth middleware stores the admin under
const AdminKey = "admin"

// AuthMiddleware validates the bearer token, loads the admin behind its sub
// claim and stores it in the context. Deactivated accounts are rejected even
// when their token is still valid.
func AuthMiddleware(cfg *config.Config, adminRepo repositories.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(parts[1], cfg)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		adminID, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			c.Abort()
			return
		}

		admin, err := adminRepo.FindByID(c.Request.Context(), adminID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			c.Abort()
			return
		}
		if !admin.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Account is deactivated"})
			c.Abort()
			return
		}

		c.Set(AdminKey, admin)
		c.Next()
	}
}

// RequireAdmin rejects authenticated accounts whose role is not admin.
// It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := AdminFromContext(c)
		if !ok || admin.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminFromContext returns the authenticated admin set by AuthMiddleware
func AdminFromContext(c *gin.Context) (*models.Admin, bool) {
	value, ok := c.Get(AdminKey)
	if !ok {
		return nil, false
	}
	admin, ok := value.(*models.Admin)
	return admin, ok
}
