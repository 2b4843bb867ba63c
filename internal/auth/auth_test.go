package auth

import (
	"regexp"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("empty secret is rejected", func(t *testing.T) {
		assert.Error(t, Init("", "24h"))
	})

	t.Run("bad expiration is rejected", func(t *testing.T) {
		assert.Error(t, Init("secret", "one day"))
	})

	t.Run("empty expiration keeps the default", func(t *testing.T) {
		assert.NoError(t, Init("secret", ""))
	})
}

func TestJWTRoundTrip(t *testing.T) {
	require.NoError(t, Init("test-secret-for-unit-tests", "1h"))

	token, err := GenerateJWT("user-123", "9876543210", "Ravi", "farmer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "9876543210", claims.Mobile)
	assert.Equal(t, "Ravi", claims.Name)
	assert.Equal(t, "farmer", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseJWT_RejectsTampering(t *testing.T) {
	require.NoError(t, Init("test-secret-for-unit-tests", "1h"))

	t.Run("garbage token", func(t *testing.T) {
		_, err := ParseJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, &JWTClaims{UserID: "user-123"})
		signed, err := other.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		_, err = ParseJWT(signed)
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestGenerateOTP(t *testing.T) {
	sixDigits := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, otp)
	}
}
