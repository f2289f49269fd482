package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnv(t *testing.T) {
	oldDebug, oldLevel, oldAddr := Debug, Level.Default, Telemetry.Addr
	t.Cleanup(func() {
		Debug, Level.Default, Telemetry.Addr = oldDebug, oldLevel, oldAddr
	})

	t.Setenv(EnvSkipMenu, "true")
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvLevel, "level02")
	t.Setenv(EnvMetricsAddr, ":9100")

	ApplyEnv()

	if !Debug.SkipMenu {
		t.Error("SkipMenu = false, want true")
	}
	if !Debug.Overlay {
		t.Error("Overlay = false, want true")
	}
	if Level.Default != "level02" {
		t.Errorf("Level.Default = %q, want %q", Level.Default, "level02")
	}
	if Telemetry.Addr != ":9100" {
		t.Errorf("Telemetry.Addr = %q, want %q", Telemetry.Addr, ":9100")
	}
}

func TestApplyEnvIgnoresBadBool(t *testing.T) {
	oldDebug := Debug
	t.Cleanup(func() { Debug = oldDebug })

	Debug.SkipMenu = false
	t.Setenv(EnvSkipMenu, "sometimes")
	ApplyEnv()

	if Debug.SkipMenu {
		t.Error("SkipMenu changed on an invalid value")
	}
}

func TestLoadEnvFile(t *testing.T) {
	oldLevel := Level.Default
	t.Cleanup(func() {
		Level.Default = oldLevel
		os.Unsetenv(EnvLevel)
	})

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvLevel+"=level02\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// godotenv does not override variables that are already set
	os.Unsetenv(EnvLevel)

	LoadEnv(path)

	if Level.Default != "level02" {
		t.Errorf("Level.Default = %q, want %q", Level.Default, "level02")
	}
}

func TestFacingWalkState(t *testing.T) {
	tests := []struct {
		facing Facing
		want   StateID
		name   string
	}{
		{FacingUp, WalkUp, "up"},
		{FacingDown, WalkDown, "down"},
		{FacingLeft, WalkLeft, "left"},
		{FacingRight, WalkRight, "right"},
	}
	for _, tt := range tests {
		if got := tt.facing.WalkState(); got != tt.want {
			t.Errorf("%v.WalkState() = %v, want %v", tt.facing, got, tt.want)
		}
		if got := tt.facing.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if _, ok := StateToFileName[tt.want]; !ok {
			t.Errorf("no sheet file for %v", tt.want)
		}
	}
}
