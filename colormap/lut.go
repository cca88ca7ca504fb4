package colormap

import (
	"image/color"
	"math"
)

// DefaultLUTSize is the number of entries of a LUT built with size <= 1.
const DefaultLUTSize = 2048

// LUT is a precomputed color table sampled uniformly over [0, 1].
// Entry i holds the map sampled at i/(Len()-1), quantized to 8 bits.
type LUT struct {
	entries []color.RGBA
}

// BuildLUT samples fn at size evenly spaced points including both ends.
func BuildLUT(fn Func, size int) *LUT {
	if size <= 1 {
		size = DefaultLUTSize
	}
	entries := make([]color.RGBA, size)
	last := float64(size - 1)
	for i := range entries {
		entries[i] = fn(float64(i) / last).RGBA()
	}
	return &LUT{entries: entries}
}

// Len returns the number of entries.
func (l *LUT) Len() int { return len(l.entries) }

// Index returns floor(clamp01(t)*(Len()-1)). NaN maps to 0.
func (l *LUT) Index(t float64) int {
	return int(math.Floor(clamp01(t) * float64(len(l.entries)-1)))
}

// At returns entry i, clamped to the table.
func (l *LUT) At(i int) color.RGBA {
	if i < 0 {
		i = 0
	} else if i >= len(l.entries) {
		i = len(l.entries) - 1
	}
	return l.entries[i]
}

// Sample returns the entry for t.
func (l *LUT) Sample(t float64) color.RGBA {
	return l.entries[l.Index(t)]
}
