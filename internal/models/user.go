// internal/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User struct matches the document in MongoDB.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Mobile    string             `bson:"mobile" json:"mobile"`
	District  string             `bson:"district,omitempty" json:"district,omitempty"`
	Panchayat string             `bson:"panchayat,omitempty" json:"panchayat,omitempty"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      string             `bson:"role" json:"role"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OTP là mã xác thực một lần gửi tới số điện thoại, hết hạn sau 5 phút.
type OTP struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Mobile    string             `bson:"mobile" json:"mobile"`
	Code      string             `bson:"code" json:"-"`
	Verified  bool               `bson:"verified" json:"verified"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
