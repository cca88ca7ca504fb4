package viewport

import "math"

// Zoom limits for fixed mode.
const (
	MinZoom = 0.15
	MaxZoom = 25
)

// Transform is the fixed-mode view: a pixel offset of the world origin from
// the canvas centre and a zoom factor. The zero value is normalized to zoom 1.
type Transform struct {
	OffsetX, OffsetY float64
	Zoom             float64
}

// Identity is the unpanned, unzoomed view.
var Identity = Transform{Zoom: 1}

// Normalize returns t with a usable zoom: non-finite or non-positive zoom
// becomes 1 and the result is clamped to [MinZoom, MaxZoom]. Non-finite
// offsets become 0.
func (t Transform) Normalize() Transform {
	if !(t.Zoom > 0) || math.IsInf(t.Zoom, 0) {
		t.Zoom = 1
	}
	t.Zoom = clamp(t.Zoom, MinZoom, MaxZoom)
	if !isFinite(t.OffsetX) {
		t.OffsetX = 0
	}
	if !isFinite(t.OffsetY) {
		t.OffsetY = 0
	}
	return t
}

// Pan moves the view by a pixel delta.
func (t Transform) Pan(dx, dy float64) Transform {
	t.OffsetX += dx
	t.OffsetY += dy
	return t
}

// ZoomAt multiplies the zoom by factor, keeping the world point under the
// pixel (anchorX, anchorY) fixed on a width x height canvas. The zoom is
// clamped to [MinZoom, MaxZoom]; an invalid factor leaves t unchanged.
func (t Transform) ZoomAt(factor, anchorX, anchorY float64, width, height int) Transform {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return t
	}
	t = t.Normalize()

	next := clamp(t.Zoom*factor, MinZoom, MaxZoom)
	ratio := next / t.Zoom
	if ratio == 1 {
		return t
	}

	viewX, viewY := float64(width)*0.5, float64(height)*0.5
	cx, cy := viewX+t.OffsetX, viewY+t.OffsetY
	t.Zoom = next
	t.OffsetX = anchorX - (anchorX-cx)*ratio - viewX
	t.OffsetY = anchorY - (anchorY-cy)*ratio - viewY
	return t
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
