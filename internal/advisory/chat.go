// internal/advisory/chat.go
package advisory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"krishi-sakhi-api-server/internal/models"
)

// MaxSessionMessages là số tin nhắn tối đa giữ lại trong một phiên chat.
const MaxSessionMessages = 50

// NewUserMessage tạo tin nhắn của người dùng.
func NewUserMessage(content, imageURL string, now time.Time) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    models.SenderUser,
		Content:   content,
		HasImage:  imageURL != "",
		ImageURL:  imageURL,
		Timestamp: now,
	}
}

// NewAIMessage tạo tin nhắn trả lời của trợ lý.
func NewAIMessage(content string, now time.Time) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    models.SenderAI,
		Content:   content,
		Timestamp: now,
	}
}

// AppendMessages nối tin nhắn vào phiên và cắt bớt FIFO về MaxSessionMessages.
// Storage order is append order; only the oldest messages are dropped.
func AppendMessages(messages []models.ChatMessage, incoming ...models.ChatMessage) []models.ChatMessage {
	messages = append(messages, incoming...)
	if len(messages) > MaxSessionMessages {
		messages = messages[len(messages)-MaxSessionMessages:]
	}
	return messages
}

// FlattenHistory gộp tin nhắn của nhiều phiên thành một dòng thời gian duy
// nhất, sắp theo timestamp tăng dần cho phía hiển thị.
func FlattenHistory(sessions []models.ChatSession) []models.ChatMessage {
	messages := []models.ChatMessage{}
	for _, s := range sessions {
		messages = append(messages, s.Messages...)
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages
}
