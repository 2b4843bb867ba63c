// internal/api/handlers/market_handler.go
package handlers

import (
	"net/http"

	"krishi-sakhi-api-server/internal/market"

	"github.com/gin-gonic/gin"
)

type MarketHandler struct{}

// GetPrices trả về bảng giá nông sản, lọc tùy chọn theo crop/district.
func (h *MarketHandler) GetPrices(c *gin.Context) {
	prices := market.Prices(c.Query("crop"), c.Query("district"))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": prices})
}
