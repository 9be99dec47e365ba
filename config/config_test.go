package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("COMPLAINT_DAILY_LIMIT", "not-a-number")
	t.Setenv("MONGODB_URI", "")

	cfg, _ := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.ComplaintDailyLimit)
	assert.Empty(t, cfg.MongoURI)
	assert.Equal(t, "cityreport", cfg.MongoDatabase)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("COMPLAINT_DAILY_LIMIT", "3")
	t.Setenv("SEED_FILE", "fixtures/seed.yaml")

	cfg, _ := Load()
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3, cfg.ComplaintDailyLimit)
	assert.Equal(t, "fixtures/seed.yaml", cfg.SeedFile)
}
