// internal/models/alert.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AlertType string

const (
	AlertWeather    AlertType = "weather"
	AlertPrice      AlertType = "price"
	AlertScheme     AlertType = "scheme"
	AlertIrrigation AlertType = "irrigation"
	AlertPest       AlertType = "pest"
	AlertFertilizer AlertType = "fertilizer"
	AlertHarvest    AlertType = "harvest"
)

func (t AlertType) IsValid() bool {
	switch t {
	case AlertWeather, AlertPrice, AlertScheme, AlertIrrigation,
		AlertPest, AlertFertilizer, AlertHarvest:
		return true
	}
	return false
}

type AlertPriority string

const (
	PriorityHigh   AlertPriority = "high"
	PriorityMedium AlertPriority = "medium"
	PriorityLow    AlertPriority = "low"
)

func (p AlertPriority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Rank trả về thứ tự hiển thị cố định: high < medium < low.
func (p AlertPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Alert là một thông báo tư vấn được sinh ra từ hồ sơ trang trại.
// Content is rendered once at generation time and never edited afterwards;
// the only mutations are the isRead/isActive flips. An alert past expiresAt
// is excluded from every active query.
type Alert struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Type      AlertType          `bson:"type" json:"type"`
	Priority  AlertPriority      `bson:"priority" json:"priority"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Crop      string             `bson:"crop,omitempty" json:"crop,omitempty"`
	IsRead    bool               `bson:"isRead" json:"isRead"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
