// internal/api/handlers/activity_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"krishi-sakhi-api-server/internal/models"
	"krishi-sakhi-api-server/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityHandler struct {
	DB         *mongo.Database
	S3Uploader *s3.Uploader
}

type WeatherSnapshotRequest struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
}

type AddActivityRequest struct {
	Type    models.ActivityType     `json:"type" binding:"required"`
	Crop    string                  `json:"crop" binding:"required"`
	Notes   string                  `json:"notes"`
	Weather *WeatherSnapshotRequest `json:"weather"`
}

// GetActivities liệt kê nhật ký chưa xóa của user, mới nhất trước, có phân trang.
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	userID := c.GetString("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	filter := bson.M{"userId": userID, "isDeleted": false}
	collection := h.DB.Collection("activities")

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(context.Background(), filter, findOpts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query activities"})
		return
	}
	defer cursor.Close(context.Background())

	var activities []models.Activity
	if err = cursor.All(context.Background(), &activities); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode activities"})
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}

	total, err := collection.CountDocuments(context.Background(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    activities,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// AddActivity ghi một hoạt động canh tác mới, gắn với hồ sơ trang trại active.
func (h *ActivityHandler) AddActivity(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Type.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type is not a supported activity type"})
		return
	}

	farm, err := activeFarm(context.Background(), h.DB, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Farm profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve farm profile"})
		}
		return
	}

	activity := models.Activity{
		UserID:    userID,
		FarmID:    farm.ID,
		Type:      req.Type,
		Crop:      req.Crop,
		Location:  farm.Location,
		Notes:     req.Notes,
		IsDeleted: false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if req.Weather != nil {
		activity.Weather = &models.WeatherSnapshot{
			Temperature: req.Weather.Temperature,
			Humidity:    req.Weather.Humidity,
			Rainfall:    req.Weather.Rainfall,
		}
	}

	result, err := h.DB.Collection("activities").InsertOne(context.Background(), activity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add activity"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		activity.ID = oid
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Activity added successfully", "data": activity})
}

// DeleteActivity xóa mềm một hoạt động: chỉ lật cờ isDeleted, bản ghi được
// giữ lại.
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	userID := c.GetString("user_id")

	oid, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.DB.Collection("activities").UpdateOne(context.Background(),
		bson.M{"_id": oid, "userId": userID, "isDeleted": false},
		bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Activity deleted successfully"})
}

// UploadPhoto nhận ảnh multipart, đẩy lên S3 rồi gắn metadata vào hoạt động.
func (h *ActivityHandler) UploadPhoto(c *gin.Context) {
	userID := c.GetString("user_id")

	oid, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("activities/%s/%s%s", userID, uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo", "details": err.Error()})
		return
	}

	image := models.ActivityImage{
		URL:     url,
		Key:     objectKey,
		Size:    fileHeader.Size,
		Format:  fileHeader.Header.Get("Content-Type"),
		Caption: c.PostForm("caption"),
	}

	result, err := h.DB.Collection("activities").UpdateOne(context.Background(),
		bson.M{"_id": oid, "userId": userID, "isDeleted": false},
		bson.M{
			"$push": bson.M{"images": image},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach photo to activity"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Photo uploaded successfully", "url": url})
}
