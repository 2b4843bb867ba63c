// internal/api/handlers/chat_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"krishi-sakhi-api-server/internal/advisory"
	"krishi-sakhi-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatHandler struct {
	DB *mongo.Database
}

type SendMessageRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId"`
	ImageURL  string `json:"imageUrl"`
}

type ClearChatRequest struct {
	SessionID string `json:"sessionId"`
}

// GetHistory gộp tin nhắn của tối đa 10 phiên gần nhất thành một dòng thời
// gian, timestamp tăng dần.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	filter := bson.M{"userId": userID, "isActive": true}
	if sessionID := c.Query("sessionId"); sessionID != "" {
		filter["sessionId"] = sessionID
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(10)

	cursor, err := h.DB.Collection("chats").Find(context.Background(), filter, findOpts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query chat history"})
		return
	}
	defer cursor.Close(context.Background())

	var sessions []models.ChatSession
	if err = cursor.All(context.Background(), &sessions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": advisory.FlattenHistory(sessions)})
}

// SendMessage nhận tin nhắn, sinh trả lời tư vấn từ bộ phân loại từ khóa
// (không gọi dịch vụ AI ngoài nào) và lưu cả hai vào phiên, cắt bớt về 50
// tin nhắn gần nhất.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	// Hồ sơ trang trại là ngữ cảnh tùy chọn cho câu trả lời.
	var farmPtr *models.Farm
	if farm, err := activeFarm(context.Background(), h.DB, userID); err == nil {
		farmPtr = &farm
	}

	now := time.Now()
	userMessage := advisory.NewUserMessage(req.Message, req.ImageURL, now)
	reply := advisory.RespondTo(req.Message, farmPtr, now)
	aiMessage := advisory.NewAIMessage(reply.Content, reply.Timestamp)

	chats := h.DB.Collection("chats")

	var session models.ChatSession
	err := chats.FindOne(context.Background(),
		bson.M{"userId": userID, "sessionId": sessionID}).Decode(&session)
	if err != nil && err != mongo.ErrNoDocuments {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat session"})
		return
	}

	messages := advisory.AppendMessages(session.Messages, userMessage, aiMessage)

	update := bson.M{
		"$set": bson.M{
			"messages":  messages,
			"isActive":  true,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"sessionId": sessionID,
			"createdAt": now,
		},
	}
	_, err = chats.UpdateOne(context.Background(),
		bson.M{"userId": userID, "sessionId": sessionID}, update,
		options.Update().SetUpsert(true))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save chat session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"userMessage": userMessage,
			"aiMessage":   aiMessage,
			"sessionId":   sessionID,
		},
	})
}

// ClearHistory tắt một phiên (hoặc tất cả các phiên) của user. Soft delete,
// tin nhắn vẫn nằm trong store.
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ClearChatRequest
	// Body rỗng nghĩa là xóa tất cả.
	c.ShouldBindJSON(&req)

	filter := bson.M{"userId": userID}
	if req.SessionID != "" {
		filter["sessionId"] = req.SessionID
	}

	_, err := h.DB.Collection("chats").UpdateMany(context.Background(), filter,
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Chat history cleared successfully"})
}
