// internal/api/handlers/alert_handler.go
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"krishi-sakhi-api-server/config"
	"krishi-sakhi-api-server/internal/advisory"
	"krishi-sakhi-api-server/internal/models"
	"krishi-sakhi-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AlertHandler struct {
	Cfg config.Config
	DB  *mongo.Database
	Hub *socket.Hub
}

// visibleFilter là điều kiện chung cho mọi truy vấn cảnh báo: còn active và
// chưa hết hạn. Expiry áp dụng lúc đọc, không có job quét nền.
func visibleFilter(userID string, now time.Time) bson.M {
	return bson.M{
		"userId":    userID,
		"isActive":  true,
		"expiresAt": bson.M{"$gt": now},
	}
}

// generatorConfig ánh xạ config sang tham số mùa của bộ sinh. Tháng chưa
// cấu hình (0) hoặc ngoài 1–12 rơi về cửa sổ mặc định thay vì vô hiệu hóa
// rule theo mùa.
func generatorConfig(cfg config.AdvisoryConfig) advisory.GeneratorConfig {
	gen := advisory.DefaultGeneratorConfig()
	if cfg.MonsoonStartMonth >= 1 && cfg.MonsoonStartMonth <= 12 &&
		cfg.MonsoonEndMonth >= 1 && cfg.MonsoonEndMonth <= 12 {
		gen.MonsoonStart = time.Month(cfg.MonsoonStartMonth)
		gen.MonsoonEnd = time.Month(cfg.MonsoonEndMonth)
	}
	return gen
}

// alertTTL trả về tuổi thọ cảnh báo từ config, mặc định khi chưa cấu hình.
func alertTTL(cfg config.AdvisoryConfig) time.Duration {
	if cfg.AlertTTLDays > 0 {
		return time.Duration(cfg.AlertTTLDays) * 24 * time.Hour
	}
	return advisory.DefaultAlertTTL
}

// GetAlerts liệt kê cảnh báo với bộ lọc tùy chọn, sắp theo ưu tiên cố định
// high → medium → low rồi mới nhất trước, phân trang 1-based.
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	userID := c.GetString("user_id")
	now := time.Now()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := visibleFilter(userID, now)
	if t := models.AlertType(c.Query("type")); t != "" {
		if !t.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type is not a supported alert type"})
			return
		}
		filter["type"] = t
	}
	if p := models.AlertPriority(c.Query("priority")); p != "" {
		if !p.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be one of: high, medium, low"})
			return
		}
		filter["priority"] = p
	}
	if c.Query("unreadOnly") == "true" {
		filter["isRead"] = false
	}

	collection := h.DB.Collection("alerts")

	cursor, err := collection.Find(context.Background(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query alerts"})
		return
	}
	defer cursor.Close(context.Background())

	var alerts []models.Alert
	if err = cursor.All(context.Background(), &alerts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode alerts"})
		return
	}

	// Thứ tự ưu tiên cố định không trùng thứ tự từ điển nên sắp ở đây thay
	// vì trong Mongo.
	advisory.SortFeed(alerts)
	total := len(alerts)
	pageItems := advisory.PageOf(alerts, page, limit)

	unreadCount, err := collection.CountDocuments(context.Background(),
		bson.M{"userId": userID, "isActive": true, "expiresAt": bson.M{"$gt": now}, "isRead": false})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count unread alerts"})
		return
	}

	if limit < 1 {
		limit = 20
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        pageItems,
		"unreadCount": unreadCount,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + limit - 1) / limit,
		},
	})
}

// MarkAsRead lật cờ isRead trên đúng một cảnh báo của user.
func (h *AlertHandler) MarkAsRead(c *gin.Context) {
	userID := c.GetString("user_id")

	oid, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	filter := visibleFilter(userID, time.Now())
	filter["_id"] = oid

	result, err := h.DB.Collection("alerts").UpdateOne(context.Background(), filter,
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alert"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Alert marked as read"})
}

// MarkAllAsRead lật isRead cho mọi cảnh báo chưa đọc còn hiển thị.
// Idempotent: gọi lần thứ hai không thay đổi gì (có thể match 0 bản ghi).
func (h *AlertHandler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetString("user_id")

	filter := visibleFilter(userID, time.Now())
	filter["isRead"] = false

	result, err := h.DB.Collection("alerts").UpdateMany(context.Background(), filter,
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All alerts marked as read", "modified": result.ModifiedCount})
}

// Generate sinh cảnh báo từ hồ sơ trang trại active rồi ghi hàng loạt.
// Không có hồ sơ → 404 (precondition của bộ sinh). Insert không cần
// transaction: mỗi cảnh báo độc lập và tự hợp lệ.
func (h *AlertHandler) Generate(c *gin.Context) {
	userID := c.GetString("user_id")
	now := time.Now()

	farm, err := activeFarm(context.Background(), h.DB, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Farm profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve farm profile"})
		}
		return
	}

	drafts := advisory.GenerateAlerts(farm, now, generatorConfig(h.Cfg.Advisory))
	ttl := alertTTL(h.Cfg.Advisory)

	docs := make([]interface{}, 0, len(drafts))
	for i := range drafts {
		drafts[i].UserID = userID
		drafts[i].ExpiresAt = now.Add(ttl)
		drafts[i].CreatedAt = now
		drafts[i].UpdatedAt = now
		docs = append(docs, drafts[i])
	}

	result, err := h.DB.Collection("alerts").InsertMany(context.Background(), docs,
		options.InsertMany().SetOrdered(false))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save alerts"})
		return
	}
	for i, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(drafts) {
			drafts[i].ID = oid
		}
	}

	// Báo ngay cho client đang mở app.
	h.Hub.SendJSON(userID, gin.H{"event": "new_alerts", "count": len(drafts)})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Generated " + strconv.Itoa(len(drafts)) + " alerts",
		"data":    drafts,
	})
}

// Delete xóa mềm một cảnh báo. Inactive là trạng thái cuối, không có đường
// kích hoạt lại.
func (h *AlertHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")

	oid, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	filter := visibleFilter(userID, time.Now())
	filter["_id"] = oid

	result, err := h.DB.Collection("alerts").UpdateOne(context.Background(), filter,
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete alert"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Alert deleted successfully"})
}
