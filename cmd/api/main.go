// cmd/api/main.go
package main

import (
	"context"
	"log"

	"krishi-sakhi-api-server/config"
	"krishi-sakhi-api-server/internal/api/routes"
	"krishi-sakhi-api-server/internal/auth"
	"krishi-sakhi-api-server/internal/database"
	"krishi-sakhi-api-server/internal/s3"
	"krishi-sakhi-api-server/internal/socket"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Nạp .env (nếu có) rồi đọc cấu hình
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	if err := auth.Init(cfg.JWT.Secret, cfg.JWT.Expiration); err != nil {
		log.Fatalf("Could not initialize auth: %v", err)
	}

	// 2. Kết nối MongoDB
	client, db, err := database.Connect(cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// 3. Seed tài khoản quản trị
	if err := database.SeedAdmin(db, cfg.Admin); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	// 4. Khởi tạo S3 uploader cho ảnh nhật ký canh tác
	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to create S3 uploader: %v", err)
	}

	// 5. Hub WebSocket cho thông báo cảnh báo
	wsHub := socket.NewHub()

	// 6. Truyền tất cả các thành phần cần thiết vào router
	router := routes.SetupRouter(cfg, db, s3Uploader, wsHub)

	// 7. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
