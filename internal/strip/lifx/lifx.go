// Package lifx mirrors the light bar onto a LIFX group: the strip's frame is
// averaged down to one color and pushed with a short fade on every flush.
// Handy for previewing animations on room lighting when no strip is wired up.
package lifx

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/pdf/golifx"
	"github.com/pdf/golifx/common"
	"github.com/pdf/golifx/protocol"
	"go.uber.org/zap"

	"github.com/davepl/brakelights/internal/logging"
	"github.com/davepl/brakelights/internal/strip"
	"github.com/davepl/brakelights/internal/util"
)

var logger = logging.New("lifx")

type Config struct {
	GroupName     string
	MaxBrightness float64
	MinBrightness float64
	PixelCount    int
}

type Strip struct {
	config Config
	client *golifx.Client
	frame  []strip.Color

	groupMu sync.RWMutex
	group   common.Group
}

var _ strip.Strip = (*Strip)(nil)

func New(ctx context.Context, config Config) (*Strip, error) {
	client, err := golifx.NewClient(&protocol.V2{})
	if err != nil {
		return nil, err
	}

	s := &Strip{
		config: config,
		client: client,
		frame:  make([]strip.Color, config.PixelCount),
	}
	go s.Start(ctx)
	return s, nil
}

func (s *Strip) Start(ctx context.Context) {
	discoveryInterval := 15 * time.Second
	ticker := time.NewTicker(discoveryInterval)
	defer ticker.Stop()

	s.client.SetDiscoveryInterval(discoveryInterval)

	timeout := 5 * time.Second
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	s.discover(ctxWithTimeout)
	cancel()

	for {
		select {
		case <-ticker.C:
			ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
			s.discover(ctxWithTimeout)
			cancel()
		case <-ctx.Done():
			return
		}
	}
}

func (s *Strip) discover(ctx context.Context) {
	logger.With(zap.String("group", s.config.GroupName)).Info("LIFX discovery starting...")

	completed := make(chan error)

	var g common.Group
	go func() {
		var err error
		g, err = s.client.GetGroupByLabel(s.config.GroupName)
		if err != nil {
			logger.With(zap.Error(err)).Warn("Failed to get LIFX group by label")
		}
		completed <- err
	}()

	select {
	case <-ctx.Done():
		logger.With(zap.Error(ctx.Err())).Warn("LIFX discovery timed out.")
	case <-completed:
		if g != nil {
			logger.With(zap.String("group", g.GetLabel())).Info("LIFX group found")
			s.groupMu.Lock()
			s.group = g
			s.groupMu.Unlock()
		} else {
			logger.Warn("Couldn't discover group.")
		}
	}

	logger.Info("LIFX discovery complete")
}

func (s *Strip) SetPixelColor(i int, c strip.Color) {
	if i < 0 || i >= len(s.frame) {
		return
	}
	s.frame[i] = c
}

func (s *Strip) Show() {
	s.groupMu.RLock()
	g := s.group
	s.groupMu.RUnlock()
	if g == nil {
		return
	}

	lifxColor := newLifxColor(averageColor(s.frame))
	lifxColor = adjustColor(lifxColor, s.config)

	logger.With(zap.Any("lifxColor", lifxColor)).Debug("Setting LIFX group color")

	if err := g.SetColor(lifxColor, 50*time.Millisecond); err != nil {
		logger.With(zap.Error(err)).Warn("Failed to set color for LIFX group")
	}
}

func averageColor(frame []strip.Color) (r, g, b uint8) {
	if len(frame) == 0 {
		return 0, 0, 0
	}
	var sumR, sumG, sumB uint64
	for _, c := range frame {
		cr, cg, cb := c.RGB()
		sumR += uint64(cr)
		sumG += uint64(cg)
		sumB += uint64(cb)
	}
	n := uint64(len(frame))
	return uint8(sumR / n), uint8(sumG / n), uint8(sumB / n)
}

func newLifxColor(r, g, b uint8) common.Color {
	hue, saturation, brightness := util.RgbToHsb(r, g, b)

	return common.Color{
		Hue:        hue,
		Saturation: saturation,
		Brightness: brightness,
		Kelvin:     3500,
	}
}

func adjustColor(color common.Color, config Config) common.Color {
	blackThreshold := 0.015 * 0xFFFF
	if color.Brightness <= uint16(blackThreshold) && color.Saturation <= uint16(blackThreshold) {
		// blackish color - turn off the light
		return common.Color{
			Hue:        0,
			Saturation: 0,
			Brightness: 0,
			Kelvin:     3500,
		}
	}

	color.Brightness = uint16(math.Min(config.MaxBrightness*0xFFFF, math.Max(config.MinBrightness*0xFFFF, float64(color.Brightness))))

	return color
}
