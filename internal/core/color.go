package core

import "fmt"

// RGB is a 24-bit color. The ray-casting engine shades wall colors by
// distance, so cells carry full RGB rather than a fixed palette index.
type RGB struct {
	R, G, B uint8
}

// Predefined colors for platform chrome (HUD, overlays, menus).
var (
	ColorWhite = RGB{255, 255, 255}
	ColorGray  = RGB{150, 150, 150}
	ColorBlack = RGB{0, 0, 0}
)

// Hex returns the color as a "#rrggbb" string, the form lipgloss accepts.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale multiplies each channel by f and clamps the result to the channel's
// own base value. Walls never render brighter than their true color; distant
// walls fade toward black.
func (c RGB) Scale(f float64) RGB {
	return RGB{
		R: scaleChannel(c.R, f),
		G: scaleChannel(c.G, f),
		B: scaleChannel(c.B, f),
	}
}

func scaleChannel(base uint8, f float64) uint8 {
	v := float64(base) * f
	if v < 0 {
		return 0
	}
	if v > float64(base) {
		return base
	}
	return uint8(v)
}
