package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DEFAULT_TAX_YEAR", "MAX_UPLOAD_SIZE_BYTES", "SESSION_TTL", "ALLOWED_ORIGINS", "CODE_TABLES_PATH"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "", cfg.Port, "explicitly empty PORT is kept")
	assert.Equal(t, 2024, cfg.DefaultTaxYear)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSizeBytes)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, "", cfg.CodeTablesPath)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_TAX_YEAR", "2023")
	t.Setenv("MAX_UPLOAD_SIZE_BYTES", "2048")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2023, cfg.DefaultTaxYear)
	assert.Equal(t, int64(2048), cfg.MaxUploadSizeBytes)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 30, cfg.RateLimitBurst)
}
