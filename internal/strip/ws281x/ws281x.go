// Package ws281x drives an addressable LED strip through the rpi-ws281x
// PWM engine. The cgo-backed engine is selected with the "pi" build tag;
// other builds get a logging mock so the binary still runs off-vehicle.
package ws281x

import (
	"go.uber.org/zap"

	"github.com/davepl/brakelights/internal/logging"
	"github.com/davepl/brakelights/internal/strip"
)

var logger = logging.New("ws281x")

type Config struct {
	GPIOPin    int
	LEDCount   int
	Brightness int
}

// engine is the subset of the ws2811 device the strip needs, kept narrow so
// the non-Pi mock stays trivial.
type engine interface {
	Init() error
	Render() error
	Fini()
	Leds(channel int) []uint32
}

type Strip struct {
	ws engine
}

var _ strip.Strip = (*Strip)(nil)

func New(config Config) (*Strip, error) {
	ws, err := newEngine(config)
	if err != nil {
		return nil, err
	}
	if err := ws.Init(); err != nil {
		return nil, err
	}
	logger.With(
		zap.Int("gpioPin", config.GPIOPin),
		zap.Int("ledCount", config.LEDCount),
		zap.Int("brightness", config.Brightness)).
		Info("LED strip initialized")
	return &Strip{ws: ws}, nil
}

func (s *Strip) SetPixelColor(i int, c strip.Color) {
	leds := s.ws.Leds(0)
	if i < 0 || i >= len(leds) {
		return
	}
	leds[i] = uint32(c)
}

func (s *Strip) Show() {
	if err := s.ws.Render(); err != nil {
		logger.With(zap.Error(err)).Warn("Failed to render LED strip")
	}
}

func (s *Strip) Close() {
	s.ws.Fini()
}
