//go:build !pi

package ws281x

type mockEngine struct {
	leds []uint32
}

func newEngine(config Config) (engine, error) {
	return &mockEngine{
		leds: make([]uint32, config.LEDCount),
	}, nil
}

func (e *mockEngine) Init() error {
	return nil
}

func (e *mockEngine) Render() error {
	logger.Debugf("render: %#v", e.leds)
	return nil
}

func (e *mockEngine) Fini() {}

func (e *mockEngine) Leds(_ int) []uint32 {
	return e.leds
}
