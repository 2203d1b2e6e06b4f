package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ATTOM_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("PROVIDER_RPS", "")

	cfg := Load()
	assert.Equal(t, 4002, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5.0, cfg.ProviderRPS)
	assert.Empty(t, cfg.AttomAPIKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ATTOM_API_KEY", "attom-key")
	t.Setenv("RENTCAST_API_KEY", "rentcast-key")
	t.Setenv("RAPIDAPI_KEY", "rapid-key")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PROVIDER_RPS", "2.5")

	cfg := Load()
	assert.Equal(t, "attom-key", cfg.AttomAPIKey)
	assert.Equal(t, "rentcast-key", cfg.RentcastAPIKey)
	assert.Equal(t, "rapid-key", cfg.RapidAPIKey)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 2.5, cfg.ProviderRPS)
}

func TestLoadBadNumbersFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("PROVIDER_RPS", "fast")

	cfg := Load()
	assert.Equal(t, 4002, cfg.Port)
	assert.Equal(t, 5.0, cfg.ProviderRPS)
}
