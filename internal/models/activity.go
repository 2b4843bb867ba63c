// internal/models/activity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityType string

const (
	ActivitySowedSeeds        ActivityType = "sowedSeeds"
	ActivityAppliedFertilizer ActivityType = "appliedFertilizer"
	ActivityIrrigated         ActivityType = "irrigated"
	ActivityPestDisease       ActivityType = "pestDisease"
	ActivityWeeding           ActivityType = "weeding"
	ActivityHarvested         ActivityType = "harvested"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivitySowedSeeds, ActivityAppliedFertilizer, ActivityIrrigated,
		ActivityPestDisease, ActivityWeeding, ActivityHarvested:
		return true
	}
	return false
}

// ActivityImage là metadata của một ảnh đính kèm đã upload lên S3.
type ActivityImage struct {
	URL     string `bson:"url" json:"url"`
	Key     string `bson:"key,omitempty" json:"key,omitempty"`
	Size    int64  `bson:"size,omitempty" json:"size,omitempty"`
	Format  string `bson:"format,omitempty" json:"format,omitempty"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
}

// WeatherSnapshot lưu lại thời tiết tại thời điểm ghi nhật ký (tùy chọn).
type WeatherSnapshot struct {
	Temperature float64 `bson:"temperature" json:"temperature"`
	Humidity    float64 `bson:"humidity" json:"humidity"`
	Rainfall    float64 `bson:"rainfall" json:"rainfall"`
}

// Activity là một hành động canh tác đã ghi nhật ký. Append-only: deletion only
// flips isDeleted, the record is never removed.
type Activity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	FarmID    primitive.ObjectID `bson:"farmId" json:"farmId"`
	Type      ActivityType       `bson:"type" json:"type"`
	Crop      string             `bson:"crop" json:"crop"`
	Location  string             `bson:"location" json:"location"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Weather   *WeatherSnapshot   `bson:"weather,omitempty" json:"weather,omitempty"`
	Images    []ActivityImage    `bson:"images,omitempty" json:"images,omitempty"`
	IsDeleted bool               `bson:"isDeleted" json:"isDeleted"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
