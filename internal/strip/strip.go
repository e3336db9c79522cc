package strip

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/davepl/brakelights/internal/logging"
)

var logger = logging.New("strip")

// Color is a packed 0x00RRGGBB pixel value, the format the ws2811 driver
// consumes directly.
type Color uint32

func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Hex parses colors like "#FF9900". A bad value falls back to black since the
// strip has no way to report configuration errors once it is animating.
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		logger.With("color", s).Warn("Failed to parse hex color - using black")
		return 0
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b)
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Strip is the pixel sink every animation renders into: an addressable color
// buffer plus a flush to hardware. Implementations are assumed always
// available; they log transport failures rather than surfacing them.
type Strip interface {
	SetPixelColor(i int, c Color)
	Show()
}
