// internal/api/handlers/scheme_handler.go
package handlers

import (
	"context"
	"net/http"

	"krishi-sakhi-api-server/config"
	"krishi-sakhi-api-server/internal/advisory"
	"krishi-sakhi-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type SchemeHandler struct {
	Cfg config.Config
	DB  *mongo.Database
}

// GetAll trả về toàn bộ bảng chương trình hỗ trợ.
func (h *SchemeHandler) GetAll(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": advisory.AllSchemes()})
}

// GetByID trả về chi tiết một chương trình.
func (h *SchemeHandler) GetByID(c *gin.Context) {
	scheme, ok := advisory.SchemeByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scheme not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": scheme})
}

// GetEligible lọc chương trình theo hồ sơ trang trại và số hoạt động đã ghi.
// Tính lại trên mỗi request; không cache trạng thái hưởng lợi.
func (h *SchemeHandler) GetEligible(c *gin.Context) {
	userID := c.GetString("user_id")

	farm, err := activeFarm(context.Background(), h.DB, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Chưa setup trang trại thì chưa xét được điều kiện nào.
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    []models.Scheme{},
				"message": "Complete farm setup to see eligible schemes",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve farm profile"})
		return
	}

	activityCount, err := countActivities(context.Background(), h.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count activities"})
		return
	}

	schemeCfg := advisory.DefaultSchemeConfig()
	if h.Cfg.Advisory.SmallFarmerLandLimit > 0 {
		schemeCfg.SmallFarmerLandLimit = h.Cfg.Advisory.SmallFarmerLandLimit
	}

	eligible := advisory.EligibleSchemes(farm, activityCount, schemeCfg)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": eligible})
}
