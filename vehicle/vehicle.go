// Package vehicle owns the outer control loop: it reads vehicle inputs,
// selects which lighting event drives the strip, and ticks the active
// animation once per frame.
package vehicle

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/davepl/brakelights/internal/events"
	"github.com/davepl/brakelights/internal/logging"
	"github.com/davepl/brakelights/internal/strip"
)

var logger = logging.New("vehicle")

type Config struct {
	PixelCount       int           `env:"PIXEL_COUNT" envDefault:"144"`
	SignalPixelCount int           `env:"SIGNAL_PIXEL_COUNT" envDefault:"32"`
	FrameInterval    time.Duration `env:"FRAME_INTERVAL" envDefault:"30ms"`
	LightType        string        `env:"LIGHT_TYPE" envDefault:"CONSOLE"`
	GPIOPin          int           `env:"GPIO_PIN" envDefault:"18"`
	Brightness       int           `env:"BRIGHTNESS" envDefault:"128"`
	LightGroupName   string        `env:"LIGHT_GROUP_NAME" envDefault:"BRAKELIGHTS"`
	MaxBrightness    float64       `env:"MAX_BRIGHTNESS" envDefault:"0.65"`
	MinBrightness    float64       `env:"MIN_BRIGHTNESS" envDefault:"0"`

	AmberHex   string `env:"COLOR_AMBER" envDefault:"#FF9900"`
	DarkRedHex string `env:"COLOR_DARK_RED" envDefault:"#200000"`
}

func (c Config) Geometry() events.Geometry {
	return events.Geometry{
		UsablePixels: c.PixelCount,
		SignalPixels: c.SignalPixelCount,
	}
}

// Palette returns the default colors with the tunable amber and dark red
// shades applied. Those two vary the most across strip hardware.
func (c Config) Palette() events.Palette {
	colors := events.DefaultPalette()
	colors.Amber = strip.Hex(c.AmberHex)
	colors.DarkRed = strip.Hex(c.DarkRedHex)
	return colors
}

// Run drives the light bar until ctx is cancelled. Braking and police draws
// block internally, so a frame can legitimately overrun FrameInterval; the
// lag warning is throttled to avoid drowning the log during a police pattern.
func Run(ctx context.Context, config Config, s strip.Strip, inputs InputSource) {
	controller := NewController(s, events.NewWallClock(), config.Geometry(), config.Palette())
	defer controller.Stop()

	var lastWarning time.Time
	for {
		select {
		case <-ctx.Done():
			return
		default:
			startTime := time.Now()

			controller.Apply(inputs.State())
			controller.Draw()

			totalDuration := time.Since(startTime)
			if totalDuration > config.FrameInterval {
				if time.Since(lastWarning) > 10*time.Second {
					logger.With(
						zap.Stringer("frameDuration", totalDuration),
						zap.Stringer("frameInterval", config.FrameInterval)).
						Warn("Frame overran FRAME_INTERVAL (expected during strobe phases)")
					lastWarning = time.Now()
				}
			} else {
				time.Sleep(config.FrameInterval - totalDuration)
			}
		}
	}
}
