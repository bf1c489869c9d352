// Package handlers contains the HTTP layer: request parsing, response
// shaping and the mapping from service errors to status codes. All
// responses carry a success flag; list responses add pagination metadata.
package handlers

import (
	"net/http"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"success": false, "message": apperrors.Message(err)})
}

func parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}
