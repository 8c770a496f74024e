package shell

import (
	"errors"
	"flag"
	"fmt"

	"github.com/go-theft-auto/standalone/gui"
)

// Config describes the window the shell opens.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool

	// GLMajor and GLMinor select the core-profile context version.
	GLMajor int
	GLMinor int

	// Background is the clear color and the window background, RGBA in [0,1].
	Background [4]float32

	// TabListWidth is the width of the vertical tab list.
	TabListWidth float32
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Title:        "GUI Standalone OpenGL",
		Width:        900,
		Height:       500,
		VSync:        true,
		GLMajor:      3,
		GLMinor:      3,
		Background:   [4]float32{0.1, 0.1, 0.1, 1.0},
		TabListWidth: 200,
	}
}

// RegisterFlags binds the overridable fields to fs, using the current values
// as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "wait for vertical sync when presenting")
}

var errInvalidConfig = errors.New("invalid config")

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", errInvalidConfig, c.Width, c.Height)
	case c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3):
		return fmt.Errorf("%w: OpenGL %d.%d is older than 3.3", errInvalidConfig, c.GLMajor, c.GLMinor)
	case c.TabListWidth <= 0:
		return fmt.Errorf("%w: tab list width %g", errInvalidConfig, c.TabListWidth)
	}
	for _, v := range c.Background {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: background %v out of range", errInvalidConfig, c.Background)
		}
	}
	return nil
}

func (c Config) backgroundColor() uint32 {
	b := c.Background
	return gui.RGBAf(b[0], b[1], b[2], b[3])
}
