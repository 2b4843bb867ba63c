// internal/models/chat.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageSender string

const (
	SenderUser MessageSender = "user"
	SenderAI   MessageSender = "ai"
)

// ChatMessage là một tin nhắn trong phiên chat tư vấn.
type ChatMessage struct {
	ID        string        `bson:"id" json:"id"`
	Sender    MessageSender `bson:"sender" json:"sender"`
	Content   string        `bson:"content" json:"content"`
	HasImage  bool          `bson:"hasImage" json:"hasImage"`
	ImageURL  string        `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
}

// ChatSession gom các tin nhắn của một phiên (user, sessionId).
// Messages are stored in append order and hold at most the 50 most recent;
// the oldest are trimmed first.
type ChatSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	SessionID string             `bson:"sessionId" json:"sessionId"`
	Messages  []ChatMessage      `bson:"messages" json:"messages"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
