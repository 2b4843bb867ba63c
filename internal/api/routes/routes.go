// internal/api/routes/routes.go
package routes

import (
	"krishi-sakhi-api-server/config"
	"krishi-sakhi-api-server/internal/api/handlers"
	"krishi-sakhi-api-server/internal/api/middleware"
	"krishi-sakhi-api-server/internal/s3"
	"krishi-sakhi-api-server/internal/socket"
	"krishi-sakhi-api-server/internal/weather"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter nhận vào các thành phần phụ thuộc và thiết lập các route.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	// Khởi tạo các handlers
	authHandler := &handlers.AuthHandler{Cfg: cfg, DB: db}
	farmHandler := &handlers.FarmHandler{DB: db}
	activityHandler := &handlers.ActivityHandler{DB: db, S3Uploader: s3Uploader}
	alertHandler := &handlers.AlertHandler{Cfg: cfg, DB: db, Hub: wsHub}
	chatHandler := &handlers.ChatHandler{DB: db}
	schemeHandler := &handlers.SchemeHandler{Cfg: cfg, DB: db}
	weatherHandler := &handlers.WeatherHandler{Weather: weather.NewService()}
	marketHandler := &handlers.MarketHandler{}
	adminHandler := &handlers.AdminHandler{DB: db}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		// Route cho WebSocket (token qua query param)
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === CÁC ROUTE KHÔNG YÊU CẦU XÁC THỰC ===

		auth := apiV1.Group("/auth")
		{
			auth.POST("/send-otp", authHandler.SendOTP)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/admin-login", authHandler.AdminLogin)
		}

		// === CÁC ROUTE YÊU CẦU XÁC THỰC (PROTECTED) ===

		// Nhóm API quản trị, yêu cầu vai trò "admin"
		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.Authorize("admin"))
		{
			admin.GET("/stats", adminHandler.GetStats)
		}

		// Nhóm các API nghiệp vụ chính cho nông dân
		farmer := apiV1.Group("/")
		farmer.Use(middleware.Authenticate())
		farmer.Use(middleware.Authorize("farmer", "admin"))
		{
			farm := farmer.Group("/farm")
			{
				farm.GET("/profile", farmHandler.GetProfile)
				farm.POST("/profile", farmHandler.SaveProfile)

				farm.GET("/activities", activityHandler.GetActivities)
				farm.POST("/activities", activityHandler.AddActivity)
				farm.DELETE("/activities/:id", activityHandler.DeleteActivity)
				farm.POST("/activities/:id/photo", activityHandler.UploadPhoto)
			}

			alerts := farmer.Group("/alerts")
			{
				alerts.GET("", alertHandler.GetAlerts)
				alerts.POST("/generate", alertHandler.Generate)
				alerts.PUT("/read-all", alertHandler.MarkAllAsRead)
				alerts.PUT("/:id/read", alertHandler.MarkAsRead)
				alerts.DELETE("/:id", alertHandler.Delete)
			}

			chat := farmer.Group("/chat")
			{
				chat.GET("/history", chatHandler.GetHistory)
				chat.POST("/message", chatHandler.SendMessage)
				chat.DELETE("/history", chatHandler.ClearHistory)
			}

			schemes := farmer.Group("/schemes")
			{
				schemes.GET("", schemeHandler.GetAll)
				schemes.GET("/eligible", schemeHandler.GetEligible)
				schemes.GET("/:id", schemeHandler.GetByID)
			}

			weatherRoutes := farmer.Group("/weather")
			{
				weatherRoutes.GET("/current", weatherHandler.GetCurrent)
				weatherRoutes.GET("/forecast", weatherHandler.GetForecast)
			}

			marketRoutes := farmer.Group("/market")
			{
				marketRoutes.GET("/prices", marketHandler.GetPrices)
			}
		}
	}

	return router
}
