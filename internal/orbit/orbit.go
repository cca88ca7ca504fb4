// Package orbit iterates a 2D map from a seed and collects the visited
// points.
package orbit

import (
	"math"

	"github.com/gogpu/attractor/formula"
	"github.com/gogpu/attractor/viewport"
)

const (
	// DefaultEscapeBound is the coordinate magnitude past which an orbit is
	// considered escaped.
	DefaultEscapeBound = 1e6

	// MaxBurnIn caps the number of discarded warm-up steps.
	MaxBurnIn = 5000

	// maxPrealloc caps the sample capacity reserved before iterating.
	// Longer orbits grow by append.
	maxPrealloc = 1 << 20
)

// Config describes one orbit.
type Config struct {
	SeedX, SeedY float64
	Params       formula.Params

	// BurnIn steps are taken and discarded before sampling. Clamped to
	// [0, MaxBurnIn].
	BurnIn int

	// Iterations is the maximum number of samples. Negative means zero.
	Iterations int

	// EscapeBound <= 0 selects DefaultEscapeBound.
	EscapeBound float64
}

// Samples holds the points of one orbit in visiting order.
type Samples struct {
	X, Y []float64

	// Box is the bounding box of the samples. It is empty when Len is 0.
	Box viewport.Bounds

	// Escaped reports that sampling stopped early on a non-finite or
	// out-of-bound point.
	Escaped bool

	// BurnInEscaped reports that warm-up escaped and the orbit restarted
	// from the origin.
	BurnInEscaped bool
}

// Len returns the number of samples.
func (s *Samples) Len() int { return len(s.X) }

// Reset empties s, keeping its buffers.
func (s *Samples) Reset() {
	s.X = s.X[:0]
	s.Y = s.Y[:0]
	s.Box = viewport.Empty()
	s.Escaped = false
	s.BurnInEscaped = false
}

func (s *Samples) grow(n int) {
	if cap(s.X) < n {
		s.X = make([]float64, 0, n)
		s.Y = make([]float64, 0, n)
	}
}

// Sample iterates step as described by cfg and stores the result in dst,
// which is reset first. A nil dst allocates a new Samples. The returned
// value is dst.
//
// If warm-up escapes, the orbit restarts from the origin (0, 0), not from
// the configured seed, and sampling begins there.
func Sample(dst *Samples, step formula.StepFunc, cfg Config) *Samples {
	if dst == nil {
		dst = new(Samples)
	}
	dst.Reset()

	n := max(cfg.Iterations, 0)
	burn := min(max(cfg.BurnIn, 0), MaxBurnIn)
	bound := cfg.EscapeBound
	if !(bound > 0) {
		bound = DefaultEscapeBound
	}
	a, b, c, d := cfg.Params.A, cfg.Params.B, cfg.Params.C, cfg.Params.D

	dst.grow(min(n, maxPrealloc))

	x, y := cfg.SeedX, cfg.SeedY
	for range burn {
		x, y = step(x, y, a, b, c, d)
		if escaped(x, y, bound) {
			x, y = 0, 0
			dst.BurnInEscaped = true
			break
		}
	}

	for range n {
		x, y = step(x, y, a, b, c, d)
		if escaped(x, y, bound) {
			dst.Escaped = true
			break
		}
		dst.X = append(dst.X, x)
		dst.Y = append(dst.Y, y)
		dst.Box.Extend(x, y)
	}
	return dst
}

// escaped reports a non-finite coordinate or one beyond bound.
func escaped(x, y, bound float64) bool {
	// NaN fails both comparisons.
	return !(math.Abs(x) <= bound && math.Abs(y) <= bound)
}
