package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "krishi_sakhi", cfg.Mongo.DBName)
	assert.Equal(t, "24h", cfg.JWT.Expiration)
	assert.Equal(t, 2.0, cfg.Advisory.SmallFarmerLandLimit)
	assert.Equal(t, 6, cfg.Advisory.MonsoonStartMonth)
	assert.Equal(t, 10, cfg.Advisory.MonsoonEndMonth)
	assert.Equal(t, 7, cfg.Advisory.AlertTTLDays)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}
