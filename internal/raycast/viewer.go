package raycast

import "math"

// DefaultFOV is the field of view in degrees. 60 gives the classic look;
// wider values exaggerate the edges even with fish-eye correction.
const DefaultFOV = 60.0

// Viewer is the first-person camera: a continuous world position with the
// origin at the top-left and y increasing downward, plus a heading in
// degrees. The orchestrator owns the viewer; the caster only reads it.
type Viewer struct {
	X, Y      float64
	Heading   float64 // degrees, kept in [0, 360)
	FOV       float64 // degrees
	MoveSpeed float64 // world units per second
	TurnSpeed float64 // degrees per second
}

// NewViewer creates a viewer at the given world position facing heading
// degrees, with the default field of view.
func NewViewer(x, y, heading, moveSpeed, turnSpeed float64) *Viewer {
	return &Viewer{
		X:         x,
		Y:         y,
		Heading:   normalizeHeading(heading),
		FOV:       DefaultFOV,
		MoveSpeed: moveSpeed,
		TurnSpeed: turnSpeed,
	}
}

// MoveForward advances the viewer along its heading. Screen y grows
// downward, so the y component is subtracted.
func (v *Viewer) MoveForward(dt float64) {
	rad := radians(v.Heading)
	v.X += v.MoveSpeed * math.Cos(rad) * dt
	v.Y -= v.MoveSpeed * math.Sin(rad) * dt
}

// MoveBackward retreats the viewer along its heading.
func (v *Viewer) MoveBackward(dt float64) {
	rad := radians(v.Heading)
	v.X -= v.MoveSpeed * math.Cos(rad) * dt
	v.Y += v.MoveSpeed * math.Sin(rad) * dt
}

// TurnLeft rotates the heading counterclockwise.
func (v *Viewer) TurnLeft(dt float64) {
	v.Heading = normalizeHeading(v.Heading + v.TurnSpeed*dt)
}

// TurnRight rotates the heading clockwise.
func (v *Viewer) TurnRight(dt float64) {
	v.Heading = normalizeHeading(v.Heading - v.TurnSpeed*dt)
}

// normalizeHeading wraps an angle into [0, 360).
func normalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
