package config

import (
	_ "embed"
)

//go:embed defaults/raywalk.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration: the sienna
// walls and dark floor of the classic look, a 60 degree field of view, and
// cell size 128.
func DefaultConfig() Config {
	return Config{
		Viewport: ViewportConfig{
			TickRate: 40,
		},
		Viewer: ViewerConfig{
			FOV:       60,
			MoveSpeed: 300,
			TurnSpeed: 100,
		},
		World: WorldConfig{
			CellSize:   128,
			WallColor:  ColorConfig{R: 160, G: 82, B: 45},
			FloorColor: ColorConfig{R: 34, G: 34, B: 34},
		},
	}
}
