package quditvis

import (
	"image/color"
	"runtime"
)

const (
	DefaultResolution = 500
	DefaultWidth      = 1500
	DefaultHeight     = 1100
)

/*
Config holds the knobs for a render. NewConfig gives the defaults, and
Options layer per-call overrides on top of a copy.
*/
type Config struct {
	Resolution int
	Colormap   Colormap

	// QuditDim enables the basis-state labels when non-zero.
	QuditDim int

	// Azim and Elev are in degrees; nil keeps the default view.
	Azim *float64
	Elev *float64

	Width      int
	Height     int
	Shade      bool
	Background color.Color

	// Workers sizes the pool of a Renderer. Ignored per call.
	Workers int
}

func NewConfig() *Config {
	return &Config{
		Resolution: DefaultResolution,
		Colormap:   CoolWarm,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Shade:      true,
		Background: color.White,
		Workers:    runtime.NumCPU(),
	}
}

// View resolves the camera angles, falling back to DefaultView.
func (c *Config) View() View {
	view := DefaultView()
	if c.Azim != nil {
		view.Azim = *c.Azim
	}
	if c.Elev != nil {
		view.Elev = *c.Elev
	}
	return view
}

func (c *Config) clone() *Config {
	dup := *c
	return &dup
}

func (c *Config) validate() error {
	switch {
	case c.Resolution < 1:
		return ErrInvalidResolution
	case c.Colormap == nil:
		return ErrNilColormap
	case c.QuditDim < 0:
		return ErrInvalidQuditDim
	case c.Width < 1 || c.Height < 1:
		return ErrInvalidSize
	}
	return nil
}

// Option is a function type for configuring a render
type Option func(*Config)

// WithResolution sets the number of samples along each angular axis.
func WithResolution(n int) Option {
	return func(c *Config) {
		c.Resolution = n
	}
}

// WithColormap replaces the default CoolWarm palette.
func WithColormap(cmap Colormap) Option {
	return func(c *Config) {
		c.Colormap = cmap
	}
}

// WithQuditDim labels the poles with |0⟩ and |dim⟩.
func WithQuditDim(dim int) Option {
	return func(c *Config) {
		c.QuditDim = dim
	}
}

// WithView sets both camera angles, in degrees.
func WithView(azim, elev float64) Option {
	return func(c *Config) {
		c.Azim = &azim
		c.Elev = &elev
	}
}

func WithAzim(azim float64) Option {
	return func(c *Config) {
		c.Azim = &azim
	}
}

func WithElev(elev float64) Option {
	return func(c *Config) {
		c.Elev = &elev
	}
}

// WithSize sets the raster size of the figure in pixels.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

func WithShading(shade bool) Option {
	return func(c *Config) {
		c.Shade = shade
	}
}

func WithBackground(bg color.Color) Option {
	return func(c *Config) {
		c.Background = bg
	}
}

func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}
