package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("colormap: invalid hex color")

// Color is an RGB triple with components in [0, 255].
// Components are kept as floats so that interpolated values survive until
// the final quantization to 8 bits.
type Color struct {
	R, G, B float64
}

// RGB creates a Color from 0-255 components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Lerp linearly interpolates from c to other; t=0 yields c, t=1 yields other.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// RGBA quantizes c to an opaque 8-bit color, rounding each channel.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: 255,
	}
}

// valid reports whether every component is finite and within [0, 255].
func (c Color) valid() bool {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// quantize rounds v to the nearest byte, clamping to [0, 255].
func quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// ParseHex parses a color of the form "#RRGGBB" or "#RGB"; the leading '#'
// is optional.
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	ok := true
	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	default:
		ok = false
	}
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB(float64(r), float64(g), float64(b)), nil
}

// mustHex is ParseHex for the built-in tables.
func mustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex accumulates the hex digits of s into val.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp01 clamps x to [0, 1]; NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
