// internal/api/handlers/admin_handler.go
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminHandler struct {
	DB *mongo.Database
}

// GetStats đếm số bản ghi từng collection cho dashboard quản trị.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats := gin.H{}
	for _, collection := range []string{"users", "farms", "activities", "alerts", "chats"} {
		count, err := h.DB.Collection(collection).CountDocuments(context.Background(), bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count " + collection})
			return
		}
		stats[collection] = count
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
