//go:build pi

package ws281x

import (
	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
)

func newEngine(config Config) (engine, error) {
	opt := ws2811.DefaultOptions
	opt.Channels[0].GpioPin = config.GPIOPin
	opt.Channels[0].Brightness = config.Brightness
	opt.Channels[0].LedCount = config.LEDCount
	return ws2811.MakeWS2811(&opt)
}
