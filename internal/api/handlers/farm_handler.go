// internal/api/handlers/farm_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"krishi-sakhi-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FarmHandler struct {
	DB *mongo.Database
}

type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

type SaveFarmRequest struct {
	Name        string              `json:"name" binding:"required"`
	Location    string              `json:"location" binding:"required"`
	LandSize    float64             `json:"landSize" binding:"required,gt=0"`
	LandUnit    models.LandUnit     `json:"landUnit" binding:"required"`
	CurrentCrop models.Crop         `json:"currentCrop" binding:"required"`
	SoilType    models.SoilType     `json:"soilType" binding:"required"`
	Irrigation  bool                `json:"irrigation"`
	Coordinates *CoordinatesRequest `json:"coordinates"`
}

// validate từ chối giá trị enum ngoài tập cho phép trước khi chạm vào store.
func (r SaveFarmRequest) validate() string {
	if !r.LandUnit.IsValid() {
		return "landUnit must be one of: cents, hectares"
	}
	if !r.CurrentCrop.IsValid() {
		return "currentCrop is not a supported crop"
	}
	if !r.SoilType.IsValid() {
		return "soilType must be one of: laterite, alluvial, coastal, forest"
	}
	return ""
}

// GetProfile lấy hồ sơ trang trại đang hoạt động của user.
func (h *FarmHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var farm models.Farm
	err := h.DB.Collection("farms").FindOne(context.Background(),
		bson.M{"userId": userID, "isActive": true}).Decode(&farm)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Farm profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve farm profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": farm})
}

// SaveProfile tạo mới hoặc cập nhật tại chỗ hồ sơ trang trại.
// Mỗi user chỉ có một hồ sơ active; gửi lại form sẽ ghi đè hồ sơ cũ, không
// tạo phiên bản mới.
func (h *FarmHandler) SaveProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SaveFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var coords *models.Coordinates
	if req.Coordinates != nil {
		coords = &models.Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		}
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":        req.Name,
			"location":    req.Location,
			"landSize":    req.LandSize,
			"landUnit":    req.LandUnit,
			"currentCrop": req.CurrentCrop,
			"soilType":    req.SoilType,
			"irrigation":  req.Irrigation,
			"coordinates": coords,
			"isActive":    true,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var farm models.Farm
	err := h.DB.Collection("farms").FindOneAndUpdate(context.Background(),
		bson.M{"userId": userID}, update, opts).Decode(&farm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save farm profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Farm profile saved successfully", "data": farm})
}

// activeFarm là helper dùng chung: trả về hồ sơ active của user.
func activeFarm(ctx context.Context, db *mongo.Database, userID string) (models.Farm, error) {
	var farm models.Farm
	err := db.Collection("farms").FindOne(ctx,
		bson.M{"userId": userID, "isActive": true}).Decode(&farm)
	return farm, err
}

// countActivities đếm hoạt động chưa xóa của user.
func countActivities(ctx context.Context, db *mongo.Database, userID string) (int64, error) {
	return db.Collection("activities").CountDocuments(ctx,
		bson.M{"userId": userID, "isDeleted": false})
}

// objectIDParam parse một path param dạng ObjectID.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return primitive.NilObjectID, false
	}
	return oid, true
}
