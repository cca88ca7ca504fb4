// Package overlay draws axes, grid lines and captions over a rendered
// image.
package overlay

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Style sets the colors and font of an overlay. Zero colors are not drawn.
type Style struct {
	Minor color.RGBA // half-step grid lines
	Grid  color.RGBA // grid lines at tick values
	Axis  color.RGBA // the x = 0 and y = 0 lines
	Tick  color.RGBA // tick marks on the axes
	Text  color.RGBA
	Panel color.RGBA // caption background

	// Face is the label font. Nil means basicfont.Face7x13.
	Face font.Face
}

// DefaultStyle returns translucent white lines on the image.
func DefaultStyle() Style {
	return Style{
		Minor: white(0.08),
		Grid:  white(0.16),
		Axis:  white(0.78),
		Tick:  white(0.9),
		Text:  white(0.92),
		Panel: color.RGBA{A: 150},
	}
}

// white returns premultiplied white with the given opacity.
func white(alpha float64) color.RGBA {
	v := uint8(alpha*255 + 0.5)
	return color.RGBA{R: v, G: v, B: v, A: v}
}

func (s Style) face() font.Face {
	if s.Face == nil {
		return basicfont.Face7x13
	}
	return s.Face
}

// NewFace returns the Go Regular font at size pixels.
func NewFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("overlay: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("overlay: create face: %w", err)
	}
	return face, nil
}

// LabelSize returns the label font size for a canvas: 1.4% of its shorter
// side, at least 15 pixels.
func LabelSize(width, height int) float64 {
	return math.Max(15, math.Round(float64(min(width, height))*0.014))
}
