// Package viewport maps between attractor world coordinates and canvas
// pixels.
//
// Two fitters choose the visible world rectangle: [FitAuto] frames the
// bounding box of an orbit, [FitFixed] derives it from a user [Transform]
// (pan offset and zoom) and ignores the samples entirely. A [Mapping] then
// converts between the chosen world rectangle and pixel coordinates.
package viewport

import "math"

// MinSpan is the smallest world span used for division.
const MinSpan = 1e-6

// Bounds is an axis-aligned world rectangle.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Empty returns the identity for Extend: inverted infinite bounds.
func Empty() Bounds {
	return Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
}

// Degenerate returns the [-1, 1] square used when there is nothing to frame.
func Degenerate() Bounds {
	return Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
}

// Extend grows b to contain (x, y).
func (b *Bounds) Extend(x, y float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// IsEmpty reports whether b contains no point.
func (b Bounds) IsEmpty() bool {
	return !(b.MinX <= b.MaxX && b.MinY <= b.MaxY)
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of b.
func (b Bounds) Center() (x, y float64) {
	return (b.MinX + b.MaxX) * 0.5, (b.MinY + b.MaxY) * 0.5
}

// Contains reports whether (x, y) lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// ContainsBounds reports whether o lies inside b.
func (b Bounds) ContainsBounds(o Bounds) bool {
	return b.Contains(o.MinX, o.MinY) && b.Contains(o.MaxX, o.MaxY)
}

// spans returns the width and height of b floored at MinSpan. NaN spans,
// as produced by non-finite bounds, are floored too.
func (b Bounds) spans() (float64, float64) {
	return floorSpan(b.Width()), floorSpan(b.Height())
}

func floorSpan(s float64) float64 {
	if !(s >= MinSpan) {
		return MinSpan
	}
	return s
}
