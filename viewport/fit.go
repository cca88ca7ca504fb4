package viewport

import "math"

const (
	// PaddingRatio is the margin added to each side of an auto-fit box, as
	// a fraction of the box span.
	PaddingRatio = 0.08

	// fixedBaseSpan is how many world units the shorter canvas side covers
	// at zoom 1 in fixed mode.
	fixedBaseSpan = 220
)

// FitAuto frames box on a width x height canvas: spans are floored at
// MinSpan, each side padded by PaddingRatio, and the shorter axis grown to
// the canvas aspect ratio around the centre of box.
func FitAuto(box Bounds, width, height int) Bounds {
	spanX, spanY := box.spans()
	spanX *= 1 + 2*PaddingRatio
	spanY *= 1 + 2*PaddingRatio

	aspect := float64(max(width, 1)) / float64(max(height, 1))
	if spanX/spanY > aspect {
		spanY = spanX / aspect
	} else {
		spanX = spanY * aspect
	}

	cx, cy := box.Center()
	return Bounds{
		MinX: cx - spanX*0.5,
		MaxX: cx + spanX*0.5,
		MinY: cy - spanY*0.5,
		MaxY: cy + spanY*0.5,
	}
}

// FitFixed returns the world rectangle shown by t on a width x height
// canvas. At zoom 1 the shorter side spans 220 world units; the world origin
// sits at the canvas centre shifted by the pixel offset.
func FitFixed(t Transform, width, height int) Bounds {
	t = t.Normalize()
	w, h := float64(width), float64(height)
	scale := math.Min(w, h) / fixedBaseSpan * t.Zoom
	if !(scale > 0) {
		// Empty canvas: keep the result well formed.
		scale = t.Zoom / fixedBaseSpan
	}
	cx := w*0.5 + t.OffsetX
	cy := h*0.5 + t.OffsetY
	return Bounds{
		MinX: -cx / scale,
		MaxX: (w - cx) / scale,
		MinY: -cy / scale,
		MaxY: (h - cy) / scale,
	}
}
