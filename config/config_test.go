package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"labwalk/locomotion"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, locomotion.DefaultTuning(), cfg.Locomotion.Tuning)
	require.Equal(t, locomotion.StartPosition, cfg.Locomotion.Start.Vec3())
}

func TestLoadOverlaysYAML(t *testing.T) {
	p := writeFile(t, "labwalk.yaml", `
server:
  addr: ":9000"
  tick_hz: 120
  broadcast_hz: 40
  idle_timeout: 30s
locomotion:
  tuning:
    free_ease: 0.5
  bounds:
    min_x: -2
    max_x: 2
    min_z: -3
    max_z: 3
log:
  level: debug
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Server.Addr)
	require.Equal(t, 120, cfg.Server.TickHz)
	require.Equal(t, 30*time.Second, cfg.Server.IdleTimeout)
	require.Equal(t, 0.5, cfg.Locomotion.Tuning.FreeEase)
	require.Equal(t, locomotion.SeatedEase, cfg.Locomotion.Tuning.SeatedEase)
	require.Equal(t, locomotion.Bounds{MinX: -2, MaxX: 2, MinZ: -3, MaxZ: 3}, cfg.Locomotion.Bounds)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("LABWALK_ADDR", "127.0.0.1:7000")
	t.Setenv("LABWALK_TICK_HZ", "90")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	require.Equal(t, 90, cfg.Server.TickHz)
}

func TestBadEnvTickRate(t *testing.T) {
	t.Setenv("LABWALK_TICK_HZ", "fast")
	_, err := Load("")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero tick":      func(c *Config) { c.Server.TickHz = 0 },
		"uneven rates":   func(c *Config) { c.Server.BroadcastHz = 25 },
		"inverted bound": func(c *Config) { c.Locomotion.Bounds.MinX = 10 },
		"ease too big":   func(c *Config) { c.Locomotion.Tuning.FreeEase = 2 },
	}
	for name, mut := range cases {
		cfg := Default()
		mut(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: err = %v, want ErrInvalid", name, err)
		}
	}
}

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); !errors.Is(err, ErrMissingVariable) {
		t.Fatalf("empty name err = %v", err)
	}
	if _, err := GetEnvVariable("LABWALK_SURELY_UNSET"); !errors.Is(err, ErrMissingVariable) {
		t.Fatalf("unset err = %v", err)
	}
	t.Setenv("LABWALK_SET", "yes")
	v, err := GetEnvVariable("LABWALK_SET")
	require.NoError(t, err)
	require.Equal(t, "yes", v)
}

func TestLoadEnvFile(t *testing.T) {
	p := writeFile(t, ".env", "LABWALK_FROM_DOTENV=1\n")
	t.Cleanup(func() { os.Unsetenv("LABWALK_FROM_DOTENV") })
	require.NoError(t, LoadEnv(p))
	require.Equal(t, "1", os.Getenv("LABWALK_FROM_DOTENV"))

	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected error for missing env file")
	}
}
