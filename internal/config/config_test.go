package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "curbside"
password = "from-file"
dbname = "curbside_pickup"

[business]
name = "Corner Market"
closing_hour = 18
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("ADMIN_API_KEY", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "secret", cfg.Admin.APIKey)
	assert.Equal(t, 11, cfg.Business.OpeningHour)
	assert.Equal(t, 18, cfg.Business.ClosingHour)
	assert.Equal(t, 15, cfg.Business.SlotDurationMinutes)
	assert.Equal(t, "America/Toronto", cfg.Business.Timezone)
	assert.Equal(t, "host=localhost port=5432 user=curbside password=from-env dbname=curbside_pickup sslmode=disable",
		cfg.Database.DSN())

	days, err := cfg.Business.Weekdays()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Sunday}, days)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeConfig(t, `
[business]
name = "From Env Path"
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, "From Env Path", cfg.Business.Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"unknown timezone", func(c *Config) { c.Business.Timezone = "Mars/Olympus" }},
		{"opening after closing", func(c *Config) { c.Business.OpeningHour = 18 }},
		{"closing past midnight", func(c *Config) { c.Business.ClosingHour = 24 }},
		{"duration not dividing hour", func(c *Config) { c.Business.SlotDurationMinutes = 25 }},
		{"zero duration", func(c *Config) { c.Business.SlotDurationMinutes = 0 }},
		{"negative lead time", func(c *Config) { c.Business.LeadTimeMinutes = -1 }},
		{"unknown closed day", func(c *Config) { c.Business.ClosedDays = []string{"Funday"} }},
		{"redis without addr", func(c *Config) { c.Redis.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, defaults().Validate())
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, `[business`)
	_, err := Load(path)
	assert.Error(t, err)
}
