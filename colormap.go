package quditvis

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap maps normalized values [0, 1] to colors.
type Colormap interface {
	At(t float64) color.Color
}

// ColormapFunc adapts a plain function to the Colormap interface.
type ColormapFunc func(t float64) color.Color

func (f ColormapFunc) At(t float64) color.Color { return f(t) }

/*
LinearColormap interpolates between evenly spaced stops in CIE-Lab, which
keeps the perceived lightness of a diverging palette symmetric around its
midpoint. Values outside [0, 1] take the end colors.
*/
type LinearColormap struct {
	Name  string
	stops []colorful.Color
}

func NewLinearColormap(name string, stops ...color.Color) *LinearColormap {
	cm := &LinearColormap{Name: name, stops: make([]colorful.Color, 0, len(stops))}
	for _, s := range stops {
		c, _ := colorful.MakeColor(s)
		cm.stops = append(cm.stops, c)
	}
	return cm
}

func (c *LinearColormap) At(t float64) color.Color {
	if len(c.stops) == 0 {
		return color.NRGBA{A: 255}
	}

	last := len(c.stops) - 1
	switch {
	case math.IsNaN(t), t <= 0, last == 0:
		return toNRGBA(c.stops[0])
	case t >= 1:
		return toNRGBA(c.stops[last])
	}

	idx := t * float64(last)
	lower := int(idx)
	frac := idx - float64(lower)
	if frac == 0 {
		return toNRGBA(c.stops[lower])
	}

	return toNRGBA(c.stops[lower].BlendLab(c.stops[lower+1], frac))
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func rgb(r, g, b uint8) color.Color {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// CoolWarm is the default diverging palette, blue through grey to red.
var CoolWarm = NewLinearColormap("coolwarm",
	rgb(59, 76, 192),
	rgb(98, 130, 234),
	rgb(141, 176, 254),
	rgb(184, 208, 249),
	rgb(221, 221, 221),
	rgb(245, 196, 173),
	rgb(244, 154, 123),
	rgb(222, 96, 77),
	rgb(180, 4, 38),
)

// Viridis is a sequential alternative for fields without a natural midpoint.
var Viridis = NewLinearColormap("viridis",
	rgb(68, 1, 84),
	rgb(72, 35, 116),
	rgb(64, 67, 135),
	rgb(52, 94, 141),
	rgb(41, 120, 142),
	rgb(32, 144, 140),
	rgb(34, 167, 132),
	rgb(68, 190, 112),
	rgb(121, 209, 81),
	rgb(189, 222, 38),
	rgb(253, 231, 37),
)
