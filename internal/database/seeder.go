// internal/database/seeder.go
package database

import (
	"context"
	"log"
	"time"

	"krishi-sakhi-api-server/config"
	"krishi-sakhi-api-server/internal/auth"
	"krishi-sakhi-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmin tạo tài khoản quản trị nếu chưa có.
// Admin đăng nhập bằng mật khẩu (không qua OTP) để vào dashboard thống kê.
func SeedAdmin(db *mongo.Database, cfg config.AdminConfig) error {
	if cfg.Mobile == "" || cfg.Password == "" {
		log.Println("Admin credentials not configured. Seeding skipped.")
		return nil
	}

	userCollection := db.Collection("users")

	count, err := userCollection.CountDocuments(context.Background(), bson.M{"mobile": cfg.Mobile})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin already exists. Seeding skipped.")
		return nil
	}

	log.Println("Admin not found. Seeding...")
	hashedPassword, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:      "Administrator",
		Mobile:    cfg.Mobile,
		Password:  hashedPassword,
		Role:      "admin",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := userCollection.InsertOne(context.Background(), admin); err != nil {
		return err
	}

	log.Println("Admin seeded successfully.")
	return nil
}
