package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/caarlos0/env"

	"github.com/davepl/brakelights/internal/logging"
	"github.com/davepl/brakelights/internal/strip"
	"github.com/davepl/brakelights/internal/strip/lifx"
	"github.com/davepl/brakelights/internal/strip/ws281x"
	"github.com/davepl/brakelights/internal/util"
	"github.com/davepl/brakelights/vehicle"
)

var (
	logger = logging.New("main")
	config = vehicle.Config{}
)

func main() {
	defer logger.Sync()

	// LOG_LEVEL is read before the config parse so its diagnostics already
	// honor the requested level.
	if level, err := zapcore.ParseLevel(util.Getenv("LOG_LEVEL", "info")); err == nil {
		logging.SetAllLevels(level)
	}

	err := env.Parse(&config)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}

	logger.With(zap.Any("config", config)).Info("Starting vehicle light bar")

	logger.Info("Adjust PIXEL_COUNT to the number of usable LEDs on the strip.")
	logger.Info("Adjust SIGNAL_PIXEL_COUNT to the LEDs reserved for turn signals on each end. (at most half the strip)")
	logger.Info("Adjust FRAME_INTERVAL to change the animation tick rate.")
	logger.Info("LIGHT_TYPE selects the output. Valid values are: [WS281X, LIFX, CONSOLE]")
	logger.Info("Adjust GPIO_PIN and BRIGHTNESS for WS281X strips. (build with -tags pi for real hardware)")
	logger.Info("Adjust LIGHT_GROUP_NAME to mirror onto a LIFX group.")
	logger.Info("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(context.Background())

	var sink strip.Strip
	switch config.LightType {
	case "WS281X":
		ws, err := ws281x.New(ws281x.Config{
			GPIOPin:    config.GPIOPin,
			LEDCount:   config.PixelCount,
			Brightness: config.Brightness,
		})
		if err != nil {
			logger.With(zap.Error(err)).Fatal("Failed to initialize WS281X strip")
		}
		defer ws.Close()
		sink = ws
	case "LIFX":
		sink, err = lifx.New(ctx, lifx.Config{
			GroupName:     config.LightGroupName,
			MinBrightness: config.MinBrightness,
			MaxBrightness: config.MaxBrightness,
			PixelCount:    config.PixelCount,
		})
		if err != nil {
			logger.With(zap.Error(err)).Fatal("Failed to create LIFX light service")
		}
	case "CONSOLE":
		sink = strip.NewConsole(config.PixelCount)
	default:
		logger.Fatalf("unknown light type: %v", config.LightType)
	}

	go vehicle.Run(ctx, config, sink, vehicle.NewScript(vehicle.DemoScript()))

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown
	logger.Info("Shutting down")
	cancel()
}
