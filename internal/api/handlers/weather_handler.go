// internal/api/handlers/weather_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"krishi-sakhi-api-server/internal/weather"

	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	Weather *weather.Service
}

// resolveLocation lấy location từ query, hoặc ghép từ lat/lon.
func resolveLocation(c *gin.Context) (string, bool) {
	location := c.Query("location")
	lat, lon := c.Query("lat"), c.Query("lon")
	if location == "" && (lat == "" || lon == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location or coordinates are required"})
		return "", false
	}
	if location == "" {
		location = fmt.Sprintf("%s,%s", lat, lon)
	}
	return location, true
}

// GetCurrent trả về thời tiết hiện tại của một địa điểm.
func (h *WeatherHandler) GetCurrent(c *gin.Context) {
	location, ok := resolveLocation(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.Weather.GetByLocation(location, 1)})
}

// GetForecast trả về dự báo tối đa 7 ngày.
func (h *WeatherHandler) GetForecast(c *gin.Context) {
	location, ok := resolveLocation(c)
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "5"))
	if days < 1 || days > 7 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 7"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.Weather.GetByLocation(location, days)})
}
