package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "ALLOWED_ORIGINS", "OPENAI_API_KEY", "ACTIVITY_LIMIT", "DUE_SOON_WINDOW"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Equal(t, 200, cfg.ActivityLimit)
	assert.Equal(t, 24*time.Hour, cfg.DueSoonWindow)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("ACTIVITY_LIMIT", "50")
	t.Setenv("DUE_SOON_WINDOW", "6h")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 50, cfg.ActivityLimit)
	assert.Equal(t, 6*time.Hour, cfg.DueSoonWindow)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ACTIVITY_LIMIT", "lots")
	t.Setenv("DUE_SOON_WINDOW", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 200, cfg.ActivityLimit)
	assert.Equal(t, 24*time.Hour, cfg.DueSoonWindow)
}
