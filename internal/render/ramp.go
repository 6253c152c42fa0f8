package render

import "image/color"

// stop is one anchor of a color ramp at position t in [0, 1].
type stop struct {
	t float64
	c color.RGBA
}

// ramp interpolates linearly between ordered stops.
type ramp []stop

func (r ramp) at(t float64) color.RGBA {
	if len(r) == 0 {
		return color.RGBA{A: 0xff}
	}
	if t <= r[0].t {
		return r[0].c
	}
	last := r[len(r)-1]
	if t >= last.t {
		return last.c
	}
	for i := 1; i < len(r); i++ {
		if t > r[i].t {
			continue
		}
		a, b := r[i-1], r[i]
		f := (t - a.t) / (b.t - a.t)
		return lerpRGBA(a.c, b.c, f)
	}
	return last.c
}

func lerpRGBA(a, b color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + f*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + f*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + f*(float64(b.B)-float64(a.B))),
		A: uint8(float64(a.A) + f*(float64(b.A)-float64(a.A))),
	}
}

// scale darkens or lightens a color by a factor around 1.
func scale(c color.RGBA, f float64) color.RGBA {
	clamp := func(v float64) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.RGBA{
		R: clamp(float64(c.R) * f),
		G: clamp(float64(c.G) * f),
		B: clamp(float64(c.B) * f),
		A: c.A,
	}
}

// seaRamp shades ocean cells by depth, darkest at the deepest point.
var seaRamp = ramp{
	{0.0, color.RGBA{0x02, 0x10, 0x24, 0xff}},
	{0.6, color.RGBA{0x0b, 0x31, 0x55, 0xff}},
	{1.0, color.RGBA{0x3a, 0x6e, 0xa5, 0xff}},
}

// landRamp is the hypsometric tint from lowlands to peaks.
var landRamp = ramp{
	{0.00, color.RGBA{0x2d, 0x6a, 0x33, 0xff}},
	{0.25, color.RGBA{0x6f, 0x9b, 0x44, 0xff}},
	{0.50, color.RGBA{0xb8, 0xa0, 0x5a, 0xff}},
	{0.75, color.RGBA{0x8a, 0x6a, 0x4f, 0xff}},
	{0.92, color.RGBA{0xb0, 0xa8, 0xa0, 0xff}},
	{1.00, color.RGBA{0xff, 0xff, 0xff, 0xff}},
}

// tempRamp runs cold blue through temperate green to hot red.
var tempRamp = ramp{
	{0.0, color.RGBA{0x1c, 0x2b, 0x6b, 0xff}},
	{0.3, color.RGBA{0x2e, 0x7e, 0xb8, 0xff}},
	{0.5, color.RGBA{0x53, 0xa3, 0x5c, 0xff}},
	{0.7, color.RGBA{0xd8, 0xa6, 0x2f, 0xff}},
	{1.0, color.RGBA{0x9e, 0x1a, 0x1a, 0xff}},
}

// precipRamp runs dry sand to saturated blue.
var precipRamp = ramp{
	{0.0, color.RGBA{0xe8, 0xdc, 0xb8, 0xff}},
	{0.4, color.RGBA{0x8f, 0xc1, 0x8f, 0xff}},
	{1.0, color.RGBA{0x10, 0x3f, 0x8f, 0xff}},
}
