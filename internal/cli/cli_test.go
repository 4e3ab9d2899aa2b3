package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SeamusWaldron/cubeguess"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		orientationsJSON = false
		logLevel = ""
		verbose = false
		envFile = ""
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute %v failed: %v", args, err)
	}
	return buf.String()
}

func TestOrientationsCommand(t *testing.T) {
	out := execute(t, "orientations")

	if !strings.Contains(out, "24 orientations") {
		t.Errorf("Expected a count line, got:\n%s", out)
	}
	if !strings.Contains(out, "#1  front=white up=green") {
		t.Errorf("Expected the reference cube first, got:\n%s", out)
	}
}

func TestOrientationsCommandJSON(t *testing.T) {
	out := execute(t, "orientations", "--json")

	var states []cubeguess.CubeState
	if err := json.Unmarshal([]byte(out), &states); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(states) != cubeguess.NumOrientations {
		t.Errorf("Expected %d states, got %d", cubeguess.NumOrientations, len(states))
	}
	for i, s := range states {
		if !s.IsRotation() {
			t.Errorf("State %d is not a rotation", i)
		}
	}
}

func TestVerboseSetsDebugLevel(t *testing.T) {
	t.Setenv("CUBEGUESS_LOG_LEVEL", "warn")
	execute(t, "orientations", "--verbose")

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.LogLevel)
	}
}

func TestInvalidLogLevelFails(t *testing.T) {
	rootCmd.SetArgs([]string{"orientations", "--log-level", "loud"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logLevel = ""
	})

	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected an error for an unknown log level")
	}
}

func TestLogLevelFlagOverridesBadEnv(t *testing.T) {
	t.Setenv("CUBEGUESS_LOG_LEVEL", "loud")
	execute(t, "orientations", "--log-level", "debug")

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.LogLevel)
	}
}

func TestMissingEnvFileFails(t *testing.T) {
	rootCmd.SetArgs([]string{"orientations", "--env", filepath.Join(t.TempDir(), "missing.env")})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		envFile = ""
	})

	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected an error for a missing env file")
	}
}
