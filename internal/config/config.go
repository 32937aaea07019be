// Package config provides YAML-based configuration loading for the
// raywalk engine: viewport timing, viewer movement, and world appearance.
package config

import "github.com/avierno/raywalk/internal/core"

// Config contains all tunable parameters for a walk session.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	World    WorldConfig    `yaml:"world"`
}

// ViewportConfig defines frame timing. Width and height come from the
// terminal, not the file.
type ViewportConfig struct {
	TickRate int `yaml:"tick_rate"` // simulation ticks per second
}

// ViewerConfig defines the first-person camera parameters.
type ViewerConfig struct {
	FOV       float64 `yaml:"fov"`        // field of view in degrees
	MoveSpeed float64 `yaml:"move_speed"` // world units per second
	TurnSpeed float64 `yaml:"turn_speed"` // degrees per second
}

// WorldConfig defines grid geometry and colors.
type WorldConfig struct {
	CellSize   int         `yaml:"cell_size"` // must be a power of two
	WallColor  ColorConfig `yaml:"wall_color"`
	FloorColor ColorConfig `yaml:"floor_color"`
}

// ColorConfig is an R,G,B triplet in YAML form.
type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGB converts the YAML triplet to the platform color type.
func (c ColorConfig) RGB() core.RGB {
	return core.RGB{R: c.R, G: c.G, B: c.B}
}
