package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thatcatcamp/tintkit/internal/palette"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	// Test getting a default value
	value := GetString("server.http_port")
	if value != "8080" {
		t.Errorf("Expected default http_port to be 8080, got %s", value)
	}
	if d := GetDuration("suggest.timeout"); d != 10*time.Second {
		t.Errorf("Expected suggest timeout 10s, got %s", d)
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("server.http_port", "9090")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("server.http_port")
	if value != "9090" {
		t.Errorf("Expected http_port to be 9090, got %s", value)
	}

	// survives a reload from disk
	InitConfig(configPath)
	if value := GetString("server.http_port"); value != "9090" {
		t.Errorf("Expected persisted http_port 9090, got %s", value)
	}
}

func TestEngineConfigDefaults(t *testing.T) {
	InitConfig(filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig failed: %v", err)
	}
	want := palette.DefaultConfig()
	if cfg.ScaleSteps != want.ScaleSteps || cfg.GradientStops != want.GradientStops ||
		cfg.ContrastTarget != want.ContrastTarget || !cfg.Background.Equal(want.Background) {
		t.Errorf("EngineConfig = %+v, want %+v", cfg, want)
	}
}

func TestEngineConfigEnvOverride(t *testing.T) {
	t.Setenv("TINT_ENGINE_CONTRAST_TARGET", "7")
	t.Setenv("TINT_ENGINE_BACKGROUND", "#111827")
	InitConfig(filepath.Join(t.TempDir(), "config.yaml"))

	cfg, err := EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig failed: %v", err)
	}
	if cfg.ContrastTarget != 7 {
		t.Errorf("ContrastTarget = %v, want 7", cfg.ContrastTarget)
	}
	if cfg.Background.Hex() != "#111827" {
		t.Errorf("Background = %s, want #111827", cfg.Background)
	}
}

func TestEngineConfigRejectsBadValues(t *testing.T) {
	InitConfig(filepath.Join(t.TempDir(), "config.yaml"))

	Set("engine.scale_steps", 50)
	if _, err := EngineConfig(); !errors.Is(err, palette.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for 50 steps, got %v", err)
	}

	Set("engine.scale_steps", 11)
	Set("engine.background", "not-a-color")
	if _, err := EngineConfig(); !errors.Is(err, palette.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for bad background, got %v", err)
	}
}
