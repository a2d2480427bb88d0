package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configContent = `
env: test
http_server:
  addresshttp: ":5001"
  timeouthttp: 10s
  idle_timeout: 60s
sheets:
  spreadsheet_id: "1vypfY9L3HNl3xtWUqjt3fjrr7YwNo7UB35JS9B0vb2I"
  sheet_name: "Subscriptions"
  sheet_id: 0
  credentials_file: "service-account.json"
smtp:
  smtp_host: "smtp.gmail.com"
  smtp_port: "587"
  smtp_user: "cutoff@example.com"
  smtp_pass: "secret"
  smtp_from: "Cutoff App <cutoff@example.com>"
reminder:
  windows: [5, 3, 1]
  cron_spec: "0 9 * * *"
  trigger_url: "http://localhost:5001/sendReminders"
cors:
  allowed_origins:
    - "https://cutoffnow.vercel.app"
    - "http://localhost:5500"
rate_limit:
  rps: 5
  burst: 10
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMustLoad_ValidConfig(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, configContent))

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, ":5001", cfg.AddressHTTP)
	assert.Equal(t, "Subscriptions", cfg.SheetName)
	assert.Equal(t, int64(0), cfg.SheetID)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, []int{5, 3, 1}, cfg.Windows)
	assert.Equal(t, "0 9 * * *", cfg.CronSpec)
	assert.Len(t, cfg.AllowedOrigins, 2)
	assert.Equal(t, float64(5), cfg.RPS)
}

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, `
sheets:
  spreadsheet_id: "abc"
smtp:
  smtp_host: "smtp.example.com"
`))

	cfg := MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "Subscriptions", cfg.SheetName)
	assert.Equal(t, []int{5, 3, 1}, cfg.Windows)
	assert.Equal(t, "0 9 * * *", cfg.CronSpec)
	assert.Equal(t, "587", cfg.SMTPPort)
}

func TestConfig_String(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, configContent))

	out := MustLoad().String()

	assert.Contains(t, out, "Env: test")
	assert.Contains(t, out, "Subscriptions")
}
