package core

// RuntimeConfig contains configuration passed to the walker at
// initialization. It adapts the game to screen size and tick rate.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 40)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 40,
	}
}

// Dt returns the fixed time step in seconds implied by the tick rate.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 40.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a walker session.
type GameState struct {
	Steps      int  // Movement ticks taken so far
	Collisions int  // Times a wall stopped the viewer
	Paused     bool // Whether the session is paused
}
