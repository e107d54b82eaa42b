package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileWithDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
  admin_ids: ["42", "7"]
  owner_id: "1"
postgres:
  dbname: outages
scheduler:
  schedule_interval: 90s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, []string{"42", "7"}, cfg.Telegram.AdminIDs)
	assert.Equal(t, "1", cfg.Telegram.OwnerID)
	assert.Equal(t, 4*time.Second, cfg.Telegram.MenuDelay)
	assert.Equal(t, "outages", cfg.Postgres.DBName)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 90*time.Second, cfg.Scheduler.ScheduleInterval)
	assert.Equal(t, 2*time.Second, cfg.Scheduler.PowerInterval)
	assert.Equal(t, 3, cfg.Power.Confirmations)
	assert.Equal(t, time.Duration(0), cfg.Wizard.SessionTTL)
	assert.Equal(t, "Europe/Kyiv", cfg.ScheduleSource.Timezone)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "from-file"
`)
	t.Setenv("BOT_TOKEN", "from-env")
	t.Setenv("ADMIN_IDS", "100,200")
	t.Setenv("WIZARD_SESSION_TTL", "30m")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Telegram.Token)
	assert.Equal(t, []string{"100", "200"}, cfg.Telegram.AdminIDs)
	assert.Equal(t, 30*time.Minute, cfg.Wizard.SessionTTL)
}

func TestLoad_MissingTokenFails(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	path := writeConfig(t, "logger:\n  level: debug\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram.token")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Telegram:       TelegramConfig{Token: "t", MenuDelay: 4 * time.Second},
			ScheduleSource: ScheduleSourceConfig{Timezone: "Europe/Kyiv"},
			Scheduler:      SchedulerConfig{ScheduleInterval: time.Minute, PowerInterval: 2 * time.Second},
			Power:          PowerConfig{Confirmations: 3},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "bad timezone", mutate: func(c *Config) { c.ScheduleSource.Timezone = "Mars/Base" }, wantErr: "timezone"},
		{name: "zero schedule interval", mutate: func(c *Config) { c.Scheduler.ScheduleInterval = 0 }, wantErr: "schedule_interval"},
		{name: "zero power interval", mutate: func(c *Config) { c.Scheduler.PowerInterval = 0 }, wantErr: "power_interval"},
		{name: "no confirmations", mutate: func(c *Config) { c.Power.Confirmations = 0 }, wantErr: "confirmations"},
		{name: "negative ttl", mutate: func(c *Config) { c.Wizard.SessionTTL = -time.Second }, wantErr: "session_ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	c := PostgresConfig{User: "u", Password: "p", Host: "db", Port: 5433, DBName: "voltyk", SSLMode: "disable"}
	assert.Equal(t, "user=u password=p host=db port=5433 dbname=voltyk sslmode=disable", c.DSN())
}
