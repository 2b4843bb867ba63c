// internal/auth/auth.go
package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims defines the payload for the JWT.
type JWTClaims struct {
	UserID string `json:"userId"`
	Mobile string `json:"mobile"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JwtSecret được nạp từ config lúc khởi động (xem cmd/api/main.go).
var JwtSecret []byte

// tokenTTL là thời hạn token, ghi đè được qua Init.
var tokenTTL = 24 * time.Hour

// Init đặt secret và thời hạn token từ cấu hình.
func Init(secret, expiration string) error {
	if secret == "" {
		return fmt.Errorf("jwt secret must not be empty")
	}
	JwtSecret = []byte(secret)
	if expiration != "" {
		d, err := time.ParseDuration(expiration)
		if err != nil {
			return fmt.Errorf("invalid jwt expiration %q: %w", expiration, err)
		}
		tokenTTL = d
	}
	return nil
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateJWT phát hành token cho một user đã xác thực.
func GenerateJWT(userID, mobile, name, role string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)
	claims := &JWTClaims{
		UserID: userID,
		Mobile: mobile,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtSecret)
}

// ParseJWT xác thực token và trả về claims.
func ParseJWT(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// OTPValidity là thời hạn của một mã OTP.
const OTPValidity = 5 * time.Minute

// GenerateOTP sinh mã OTP 6 chữ số.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
