package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
tailscale:
  enabled: false
limits:
  max_reps: 30
  max_weeks: 24
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Tailscale.Enabled {
		t.Error("tailscale.enabled = true, want false")
	}
	if cfg.Limits.MaxReps != 30 {
		t.Errorf("limits.max_reps = %d, want 30", cfg.Limits.MaxReps)
	}
	if cfg.Limits.MaxWeeks != 24 {
		t.Errorf("limits.max_weeks = %d, want 24", cfg.Limits.MaxWeeks)
	}
}

// TestEnvOverride verifies that IRONMAX_ env vars take precedence over YAML values.
// This ensures production deployments can override config via environment.
func TestEnvOverride(t *testing.T) {
	t.Setenv("IRONMAX_SERVER_HOST", "override-host")
	t.Setenv("IRONMAX_SERVER_PORT", "9999")
	t.Setenv("IRONMAX_MAX_WEEKS", "52")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "override-host" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "override-host")
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Limits.MaxWeeks != 52 {
		t.Errorf("limits.max_weeks = %d, want 52", cfg.Limits.MaxWeeks)
	}
	// Unchanged fields should keep YAML values
	if cfg.Limits.MaxReps != 30 {
		t.Errorf("limits.max_reps = %d, want 30", cfg.Limits.MaxReps)
	}
}

// TestLimitDefaults verifies that omitted limits fall back to the
// recommended UI bounds.
func TestLimitDefaults(t *testing.T) {
	yaml := `
server:
  port: 8080
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Limits.MaxReps != DefaultMaxReps {
		t.Errorf("limits.max_reps = %d, want %d", cfg.Limits.MaxReps, DefaultMaxReps)
	}
	if cfg.Limits.MaxWeeks != DefaultMaxWeeks {
		t.Errorf("limits.max_weeks = %d, want %d", cfg.Limits.MaxWeeks, DefaultMaxWeeks)
	}
}

// TestValidationMissingPort verifies that missing required fields produce a clear error.
// Prevents starting the server with incomplete configuration.
func TestValidationMissingPort(t *testing.T) {
	yaml := `
server:
  host: "0.0.0.0"
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for missing port")
	}
}

// TestTailscaleSkipsPortRequirement verifies that a tsnet deployment does
// not need a listen port, and gets a default hostname.
func TestTailscaleSkipsPortRequirement(t *testing.T) {
	yaml := `
tailscale:
  enabled: true
  state_dir: "/var/lib/ironmax"
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tailscale.Hostname != "ironmax" {
		t.Errorf("tailscale.hostname = %q, want %q", cfg.Tailscale.Hostname, "ironmax")
	}
}

// TestValidationBadLimits verifies negative limits are rejected.
func TestValidationBadLimits(t *testing.T) {
	yaml := `
server:
  port: 8080
limits:
  max_reps: -5
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for negative max_reps")
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
