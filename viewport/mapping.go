package viewport

import "math"

// Mapping converts between world coordinates and the pixels of a canvas.
//
// World X grows to the right and world Y grows downward, matching pixel
// rows: MinY maps to row 0.
type Mapping struct {
	World         Bounds
	Width, Height int

	// CenterX and CenterY are the pixel centre of the canvas.
	CenterX, CenterY float64

	// ScaleX and ScaleY are pixels per world unit.
	ScaleX, ScaleY float64

	spanX, spanY float64
}

// NewMapping returns the mapping of world onto a width x height canvas.
func NewMapping(world Bounds, width, height int) Mapping {
	spanX, spanY := world.spans()
	return Mapping{
		World:   world,
		Width:   width,
		Height:  height,
		CenterX: float64(width) * 0.5,
		CenterY: float64(height) * 0.5,
		ScaleX:  float64(width-1) / spanX,
		ScaleY:  float64(height-1) / spanY,
		spanX:   spanX,
		spanY:   spanY,
	}
}

// DegenerateMapping is the mapping reported when an orbit produced no
// samples: the Degenerate square stretched over the canvas.
func DegenerateMapping(width, height int) Mapping {
	return Mapping{
		World:   Degenerate(),
		Width:   width,
		Height:  height,
		CenterX: float64(width) * 0.5,
		CenterY: float64(height) * 0.5,
		ScaleX:  float64(width-1) / 2,
		ScaleY:  float64(height-1) / 2,
		spanX:   2,
		spanY:   2,
	}
}

// ToPixel maps a world point to the nearest pixel. ok is false when the
// pixel falls outside the canvas or the point is not finite.
func (m Mapping) ToPixel(x, y float64) (px, py int, ok bool) {
	fx := math.Round((x - m.World.MinX) / m.spanX * float64(m.Width-1))
	fy := math.Round((y - m.World.MinY) / m.spanY * float64(m.Height-1))
	// Comparisons are false for NaN, so non-finite points fail here.
	if !(fx >= 0 && fx < float64(m.Width) && fy >= 0 && fy < float64(m.Height)) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// ToWorld maps a pixel position, possibly fractional, back to world space.
func (m Mapping) ToWorld(px, py float64) (x, y float64) {
	x = m.World.MinX + px/nonZero(m.ScaleX)
	y = m.World.MinY + py/nonZero(m.ScaleY)
	return x, y
}

// nonZero guards the 1-pixel canvas, whose scale is zero.
func nonZero(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
