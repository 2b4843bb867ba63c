// internal/api/handlers/auth_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"krishi-sakhi-api-server/config"
	"krishi-sakhi-api-server/internal/auth"
	"krishi-sakhi-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthHandler struct {
	Cfg config.Config
	DB  *mongo.Database
}

type SendOTPRequest struct {
	Mobile string `json:"mobile" binding:"required"`
}

type SignupRequest struct {
	Name      string `json:"name" binding:"required"`
	Mobile    string `json:"mobile" binding:"required"`
	District  string `json:"district" binding:"required"`
	Panchayat string `json:"panchayat"`
	Location  string `json:"location"`
	OTP       string `json:"otp" binding:"required"`
}

type LoginRequest struct {
	Mobile string `json:"mobile" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
}

type AdminLoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SendOTP phát hành mã OTP cho một số điện thoại.
// Tích hợp SMS thật là collaborator bên ngoài; ở chế độ debug mã được trả
// thẳng trong response để client thử nghiệm.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
		return
	}

	otp := models.OTP{
		Mobile:    req.Mobile,
		Code:      code,
		Verified:  false,
		ExpiresAt: time.Now().Add(auth.OTPValidity),
		CreatedAt: time.Now(),
	}

	if _, err := h.DB.Collection("otps").InsertOne(context.Background(), otp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store OTP"})
		return
	}

	resp := gin.H{"success": true, "message": "OTP sent successfully"}
	if h.Cfg.Server.Mode == "debug" {
		resp["otp"] = code
	}
	c.JSON(http.StatusOK, resp)
}

// consumeOTP kiểm tra mã OTP còn hạn và đánh dấu đã dùng.
func (h *AuthHandler) consumeOTP(ctx context.Context, mobile, code string) bool {
	result := h.DB.Collection("otps").FindOneAndUpdate(ctx,
		bson.M{
			"mobile":    mobile,
			"code":      code,
			"verified":  false,
			"expiresAt": bson.M{"$gt": time.Now()},
		},
		bson.M{"$set": bson.M{"verified": true}},
	)
	return result.Err() == nil
}

// Signup xác thực OTP và đăng ký nông dân mới.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.consumeOTP(context.Background(), req.Mobile, req.OTP) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		return
	}

	users := h.DB.Collection("users")

	count, err := users.CountDocuments(context.Background(), bson.M{"mobile": req.Mobile})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for user"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this mobile already exists"})
		return
	}

	newUser := models.User{
		Name:      req.Name,
		Mobile:    req.Mobile,
		District:  req.District,
		Panchayat: req.Panchayat,
		Location:  req.Location,
		Role:      "farmer",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	result, err := users.InsertOne(context.Background(), newUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newUser.ID = oid
	}

	token, err := auth.GenerateJWT(newUser.ID.Hex(), newUser.Mobile, newUser.Name, newUser.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": newUser})
}

// Login xác thực OTP cho người dùng đã đăng ký.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.DB.Collection("users").FindOne(context.Background(),
		bson.M{"mobile": req.Mobile, "isActive": true}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	if !h.consumeOTP(context.Background(), req.Mobile, req.OTP) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		return
	}

	token, err := auth.GenerateJWT(user.ID.Hex(), user.Mobile, user.Name, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
}

// AdminLogin đăng nhập bằng mật khẩu cho tài khoản quản trị đã seed.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.DB.Collection("users").FindOne(context.Background(),
		bson.M{"mobile": req.Mobile, "role": "admin", "isActive": true}).Decode(&user)
	if err != nil || !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT(user.ID.Hex(), user.Mobile, user.Name, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
