package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YusovID/reputation-engine/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
env: dev
server:
  host: 0.0.0.0
  port: "9090"
postgres:
  username: user
  password: secret
  host: db
  database: reputation
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, baseConfig))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "postgres://user:secret@db:5432/reputation?sslmode=disable", cfg.Postgres.ConnString())

	scoring := cfg.GetScoringConfig()
	assert.Equal(t, 10, scoring.VelocityTarget)
	assert.Equal(t, 90*24*time.Hour, scoring.VelocityWindow)
	assert.Equal(t, 7*24*time.Hour, scoring.ResponsivenessSLA)
	assert.Equal(t, 9999, scoring.GoalCap)
	assert.Equal(t, []float64{4.8, 4.9, 5.0}, scoring.DefaultTargets)

	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadFrom_ScoringOverrides(t *testing.T) {
	body := baseConfig + `
scoring:
  velocity_target: 25
  velocity_window: 720h
  responsiveness_sla: 48h
  goal_cap: 500
  default_targets: [4.5, 4.7]
`

	cfg, err := LoadFrom(writeConfig(t, body))
	require.NoError(t, err)

	scoring := cfg.GetScoringConfig()
	assert.Equal(t, 25, scoring.VelocityTarget)
	assert.Equal(t, 30*24*time.Hour, scoring.VelocityWindow)
	assert.Equal(t, 48*time.Hour, scoring.ResponsivenessSLA)
	assert.Equal(t, 500, scoring.GoalCap)
	assert.Equal(t, []float64{4.5, 4.7}, scoring.DefaultTargets)
}

func TestLoadFrom_InvalidScoring(t *testing.T) {
	testCases := []struct {
		name  string
		extra string
		field string
	}{
		{name: "Zero velocity target", extra: "scoring:\n  velocity_target: -1\n", field: "scoring.velocity_target"},
		{name: "Zero goal cap", extra: "scoring:\n  goal_cap: -5\n", field: "scoring.goal_cap"},
		{name: "Target above five", extra: "scoring:\n  default_targets: [4.8, 5.5]\n", field: "scoring.default_targets"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, baseConfig+tc.extra))
			require.Error(t, err)

			var cfgErr *apperrors.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	_, err := Load()
	assert.EqualError(t, err, "CONFIG_PATH is not set")

	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err = Load()
	assert.ErrorContains(t, err, "config file does not exist")
}
