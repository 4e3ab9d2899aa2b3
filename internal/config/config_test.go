package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeguess"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, cubeguess.DefaultFeedbackDelay, cfg.FeedbackDelay)
	assert.Equal(t, "rotation", cfg.Strategy)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		EnvAddr:          ":9090",
		EnvLogLevel:      "debug",
		EnvFeedbackDelay: "1.5s",
		EnvStrategy:      "axis-shuffle",
		EnvSessionTTL:    "10m",
		EnvClientOrigin:  "http://localhost:5173",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1500*time.Millisecond, cfg.FeedbackDelay)
	assert.Equal(t, "axis-shuffle", cfg.Strategy)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "http://localhost:5173", cfg.ClientOrigin)
}

func TestFromEnvRejectsUnparsableDurations(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{EnvFeedbackDelay: "soon"}))
	assert.Error(t, err)

	_, err = FromEnv(envMap(map[string]string{EnvSessionTTL: "later"}))
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"negative delay", map[string]string{EnvFeedbackDelay: "-1s"}},
		{"zero ttl", map[string]string{EnvSessionTTL: "0s"}},
		{"unknown strategy", map[string]string{EnvStrategy: "random"}},
		{"unknown level", map[string]string{EnvLogLevel: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromEnv(envMap(tt.env))
			require.NoError(t, err)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLaterLayerFixesBadLevel(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{EnvLogLevel: "loud"}))
	require.NoError(t, err)

	cfg.LogLevel = "debug"
	assert.NoError(t, cfg.Validate())
}

func TestLoadFailsOnMissingNamedFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CUBEGUESS_ADDR=:7070\n"), 0644))
	t.Setenv(EnvAddr, "")
	os.Unsetenv(EnvAddr)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
}

func TestSessionOptions(t *testing.T) {
	cfg := Default()
	cfg.Strategy = "axis-shuffle"
	opts, err := cfg.SessionOptions()
	require.NoError(t, err)

	s := cubeguess.NewSession(nil, opts...)
	assert.Equal(t, cubeguess.StrategyAxisShuffle, s.Strategy())
}
