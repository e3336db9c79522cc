package strip

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Console renders the strip as a single line of 24-bit ANSI background
// blocks, redrawn in place. Useful for running the light bar off-vehicle.
type Console struct {
	frame []Color
	out   io.Writer
}

func NewConsole(pixels int) *Console {
	return &Console{
		frame: make([]Color, pixels),
		out:   os.Stdout,
	}
}

func (c *Console) SetPixelColor(i int, col Color) {
	if i < 0 || i >= len(c.frame) {
		return
	}
	c.frame[i] = col
}

func (c *Console) Show() {
	var sb strings.Builder
	for _, col := range c.frame {
		r, g, b := col.RGB()
		fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm ", r, g, b)
	}
	sb.WriteString("\x1b[0m")
	fmt.Fprintf(c.out, "\r%s", sb.String())
}
