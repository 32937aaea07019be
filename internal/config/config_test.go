package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded Config
	if err := yaml.Unmarshal(defaultYAML, &embedded); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if embedded != DefaultConfig() {
		t.Errorf("embedded default %+v differs from DefaultConfig() %+v", embedded, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
viewport:
  tick_rate: 60
viewer:
  fov: 90
  move_speed: 150
  turn_speed: 80
world:
  cell_size: 64
  wall_color: {r: 10, g: 20, b: 30}
  floor_color: {r: 1, g: 2, b: 3}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Viewport.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.Viewport.TickRate)
	}
	if cfg.Viewer.FOV != 90 {
		t.Errorf("FOV = %v, expected 90", cfg.Viewer.FOV)
	}
	if cfg.World.CellSize != 64 {
		t.Errorf("CellSize = %d, expected 64", cfg.World.CellSize)
	}
	if got := cfg.World.WallColor.RGB(); got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("WallColor = %v", got)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadUnparseableCustomPathFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("viewport: ["), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with a broken explicit config should fail")
	}
}
