package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"krishi-sakhi-api-server/config"
	"krishi-sakhi-api-server/internal/advisory"
)

func TestGeneratorConfig(t *testing.T) {
	t.Run("configured months pass through", func(t *testing.T) {
		gen := generatorConfig(config.AdvisoryConfig{MonsoonStartMonth: 5, MonsoonEndMonth: 9})
		assert.Equal(t, time.May, gen.MonsoonStart)
		assert.Equal(t, time.September, gen.MonsoonEnd)
	})

	t.Run("zero-valued config keeps the default window", func(t *testing.T) {
		gen := generatorConfig(config.AdvisoryConfig{})
		assert.Equal(t, advisory.DefaultGeneratorConfig(), gen)
	})

	t.Run("out-of-range months keep the default window", func(t *testing.T) {
		gen := generatorConfig(config.AdvisoryConfig{MonsoonStartMonth: 13, MonsoonEndMonth: 10})
		assert.Equal(t, advisory.DefaultGeneratorConfig(), gen)
	})
}

func TestAlertTTL(t *testing.T) {
	assert.Equal(t, advisory.DefaultAlertTTL, alertTTL(config.AdvisoryConfig{}))
	assert.Equal(t, 3*24*time.Hour, alertTTL(config.AdvisoryConfig{AlertTTLDays: 3}))
}
