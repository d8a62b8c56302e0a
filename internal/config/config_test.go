package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"CAMPUS_HTTP_ADDR", "CAMPUS_FALLBACK_KM", "CAMPUS_AI_TIMEOUT", "CAMPUS_CHAT_QUOTA", "CORS_ALLOWED_ORIGINS", "CAMPUS_ENV", "CAMPUS_TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTP.Addr)
	assert.Equal(t, 300, cfg.Tariff.FallbackKm)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 100, cfg.AI.ChatQuota)
	assert.Equal(t, defaultOrigins, cfg.HTTP.CORSOrigins)
	assert.Empty(t, cfg.HTTP.TrustedProxies)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CAMPUS_HTTP_ADDR", ":9000")
	t.Setenv("CAMPUS_ENV", "production")
	t.Setenv("CAMPUS_FALLBACK_KM", "450")
	t.Setenv("CAMPUS_AI_TIMEOUT", "2500ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://campus.example , ,https://admin.example")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("CAMPUS_TRUSTED_PROXIES", "10.0.0.0/8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 450, cfg.Tariff.FallbackKm)
	assert.Equal(t, 2500*time.Millisecond, cfg.AI.Timeout)
	assert.Equal(t, []string{"https://campus.example", "https://admin.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "gemini-1.5-pro", cfg.AI.GeminiModel)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.HTTP.TrustedProxies)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CAMPUS_FALLBACK_KM", "far")
	t.Setenv("CAMPUS_AI_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Tariff.FallbackKm)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
}

func TestLoad_Rejects(t *testing.T) {
	t.Setenv("CAMPUS_FALLBACK_KM", "-5")
	_, err := Load()
	assert.Error(t, err)
}
