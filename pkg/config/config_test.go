package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIServer_Defaults(t *testing.T) {
	cfg, err := ParseAPIServer([]byte("auth:\n  secret: test-secret\n"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "finpet", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Monitoring.Enabled)
	assert.Equal(t, 25, cfg.Pet.DailyMoodDecay)
	assert.Equal(t, 10, cfg.Pet.DailyFullnessDecay)
	assert.Equal(t, 5, cfg.Pet.LoginMoodBonus)
	assert.Equal(t, 5, cfg.Pet.StreakTarget)
	assert.Equal(t, 20, cfg.Pet.StreakBonus)
	assert.Equal(t, 10*time.Minute, cfg.Reconciliation.Interval)
	assert.Equal(t, time.Minute, cfg.Reconciliation.QuietPeriod)
	assert.Equal(t, 500, cfg.Reconciliation.BatchSize)
}

func TestParseAPIServer_Overrides(t *testing.T) {
	t.Setenv("FINPET_DB_PASSWORD", "s3cret")

	raw := `
server:
  port: 9000
  read_timeout: 5s
database:
  host: db
  user: finpet
  password: ${FINPET_DB_PASSWORD}
auth:
  jwks_url: https://auth.example.com/.well-known/jwks.json
  issuer: https://auth.example.com
pet:
  timezone: Europe/Berlin
  daily_mood_decay: 10
`
	cfg, err := ParseAPIServer([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 10, cfg.Pet.DailyMoodDecay)

	rules := cfg.Pet.Rules()
	assert.Equal(t, 10, rules.MoodDecay)
	assert.Equal(t, 10, rules.FullnessDecay)
	assert.Equal(t, 5, rules.StreakTarget)
	assert.Equal(t, 20, rules.StreakBonus)

	loc, err := cfg.Pet.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestParseAPIServer_Validation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing auth", raw: "server:\n  port: 8081\n"},
		{name: "rate limit without redis", raw: "auth:\n  secret: x\nrate_limit:\n  enabled: true\n"},
		{name: "bad timezone", raw: "auth:\n  secret: x\npet:\n  timezone: Mars/Olympus\n"},
		{name: "bad log format", raw: "auth:\n  secret: x\nlogging:\n  format: xml\n"},
		{name: "mood decay out of range", raw: "auth:\n  secret: x\npet:\n  daily_mood_decay: 150\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAPIServer([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadAPIServer_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  secret: file-secret\n"), 0o600))

	cfg, err := LoadAPIServer(path)
	require.NoError(t, err)
	assert.Equal(t, "file-secret", cfg.Auth.Secret)

	_, err = LoadAPIServer(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}
