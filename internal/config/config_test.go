package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[storage]
driver = "postgres"

[database]
host = "db"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 30, cfg.Reminders.PollInterval)
	assert.Equal(t, 60, cfg.Reminders.WindowMinutes)
	assert.Equal(t, NotifierLog, cfg.Notifications.Driver)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("ADMIN_TOKEN", "admin-token")
	t.Setenv("ADVISOR_API_KEY", "key")

	path := writeConfig(t, `
[database]
password = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "admin-token", cfg.Admin.Token)
	assert.Equal(t, "key", cfg.Advisor.APIKey)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"unknown storage", func(c *Config) { c.Storage.Driver = "sqlite" }},
		{"unknown notifier", func(c *Config) { c.Notifications.Driver = "sms" }},
		{"kafka without brokers", func(c *Config) { c.Notifications.Driver = NotifierKafka }},
		{"zero poll", func(c *Config) { c.Reminders.PollInterval = 0 }},
		{"negative grace", func(c *Config) { c.Reminders.MissedGraceMinutes = -5 }},
		{"bad timezone", func(c *Config) { c.Reminders.Timezone = "Mars/Olympus" }},
		{"zero retries", func(c *Config) { c.Persistence.MaxRetries = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
