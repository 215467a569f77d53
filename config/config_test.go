package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "5200", cfg.Port)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, "oneearth", cfg.KeyPrefix)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.XPAwardOnce)
	assert.Equal(t, time.Duration(0), cfg.BackupInterval)
	assert.Equal(t, time.Minute, cfg.GaugeRefreshInterval)
	assert.False(t, cfg.R2.Enabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"STORE_DRIVER":    "Redis",
		"REDIS_DB":        "3",
		"ALLOWED_ORIGINS": " http://a.test , http://b.test,",
		"XP_AWARD_ONCE":   "true",
		"BACKUP_INTERVAL": "15m",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.StoreDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.XPAwardOnce)
	assert.Equal(t, 15*time.Minute, cfg.BackupInterval)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"STORE_DRIVER": "sqlite"}},
		{"postgres without dsn", map[string]string{"STORE_DRIVER": "postgres"}},
		{"r2 without credentials", map[string]string{"STORE_DRIVER": "r2", "R2_BUCKET_NAME": "b"}},
		{"bad redis db", map[string]string{"REDIS_DB": "zero"}},
		{"bad bool", map[string]string{"XP_AWARD_ONCE": "sometimes"}},
		{"negative interval", map[string]string{"BACKUP_INTERVAL": "-1m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envOf(tt.env))
			assert.Error(t, err)
		})
	}
}
