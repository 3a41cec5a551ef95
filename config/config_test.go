package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("default screen = %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Field.CellSize <= 0 {
		t.Errorf("default cell_size = %g", cfg.Field.CellSize)
	}
	if len(cfg.Profiles) != 4 {
		t.Errorf("default profiles = %d, want 4", len(cfg.Profiles))
	}
	if cfg.DefaultProfile != "monet" {
		t.Errorf("default_profile = %q, want monet", cfg.DefaultProfile)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	user := `
screen:
  width: 640
  height: 480
  target_fps: 30
noise:
  algorithm: simplex
  seed: 99
`
	if err := os.WriteFile(path, []byte(user), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Screen.Width != 640 || cfg.Screen.Height != 480 {
		t.Errorf("screen = %dx%d, want 640x480", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Noise.Algorithm != "simplex" || cfg.Noise.Seed != 99 {
		t.Errorf("noise = %+v", cfg.Noise)
	}
	// Untouched defaults survive the merge
	if cfg.Field.CellSize != 15 {
		t.Errorf("cell_size = %g, want default 15", cfg.Field.CellSize)
	}
	if len(cfg.Profiles) != 4 {
		t.Errorf("profiles = %d, want default 4", len(cfg.Profiles))
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero screen width", "screen:\n  width: 0\n"},
		{"negative screen height", "screen:\n  height: -600\n"},
		{"zero cell size", "field:\n  cell_size: 0\n"},
		{"negative time step", "field:\n  time_step: -0.002\n"},
		{"empty noise algorithm", "noise:\n  algorithm: \"\"\n"},
		{"unknown default profile", "default_profile: picasso\n"},
		{"opacity out of range", "profiles:\n  - id: bad\n    opacity: 300\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected configuration error, got nil")
			}
		})
	}
}

func TestProfileByID(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	p, err := cfg.ProfileByID("vangogh")
	if err != nil {
		t.Fatalf("ProfileByID: %v", err)
	}
	if p.Name != "Vincent van Gogh" {
		t.Errorf("name = %q", p.Name)
	}
	if p.AngleMultiplier != 3 {
		t.Errorf("angle_multiplier = %g, want 3", p.AngleMultiplier)
	}

	if _, err := cfg.ProfileByID("rothko"); err == nil {
		t.Error("expected error for unknown profile id")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot: %v", err)
	}
	if reloaded.Screen != cfg.Screen {
		t.Errorf("screen changed across round trip: %+v vs %+v", reloaded.Screen, cfg.Screen)
	}
	if len(reloaded.Profiles) != len(cfg.Profiles) {
		t.Errorf("profiles = %d, want %d", len(reloaded.Profiles), len(cfg.Profiles))
	}
}
