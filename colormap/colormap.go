// Package colormap turns a scalar t in [0, 1] into an RGB color.
//
// A [Map] is one of two closed variants:
//
//   - a linear gradient through an ordered list of [Stop]s, and
//   - a cyclic banded map ([Banded]) of flat colors with optional soft edges,
//     repeated Count times over [0, 1].
//
// Maps are immutable once constructed. They are looked up by name through a
// [Registry], which normalizes names (Unicode NFKC, whitespace, case) and
// falls back to a default map for names it does not know.
//
// Per-pixel coloring should go through a [LUT], a fixed-size table built
// once from a map by [BuildLUT].
package colormap

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for map construction.
var (
	// ErrInvalidStops is returned when a gradient stop list is malformed.
	ErrInvalidStops = errors.New("colormap: invalid stop list")

	// ErrInvalidBands is returned when a banded definition is malformed.
	ErrInvalidBands = errors.New("colormap: invalid band definition")
)

// Func samples a color map at t in [0, 1].
type Func func(t float64) Color

// Kind identifies the variant of a Map.
type Kind uint8

const (
	// KindGradient interpolates linearly between color stops.
	KindGradient Kind = iota
	// KindBanded repeats soft-edged flat color bands.
	KindBanded
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGradient:
		return "gradient"
	case KindBanded:
		return "banded"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Stop is a color at a position of a gradient.
type Stop struct {
	T     float64 // position in [0, 1]
	Color Color
}

// Band is one flat color of a banded map.
type Band struct {
	Color  Color
	Weight float64 // relative width, > 0
}

// Banded defines a cyclic banded map.
type Banded struct {
	Bands []Band

	// Count is how many times the band sequence repeats over [0, 1].
	Count float64

	// Smoothness in [0, 1] is the fraction of each band, split between its
	// two edges, that blends into the neighbouring band. Zero gives hard
	// edges.
	Smoothness float64
}

// Map is an immutable color map.
type Map struct {
	name string
	kind Kind

	// KindGradient
	stops []Stop

	// KindBanded
	bands      []Band
	edges      []float64 // len(bands)+1 cumulative weight edges, edges[0]=0
	count      float64
	smoothness float64
}

// NewGradient creates a linear gradient map. Stops must have non-decreasing
// positions starting at 0 and ending at 1, and colors within [0, 255].
func NewGradient(name string, stops []Stop) (*Map, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: %q needs at least two stops", ErrInvalidStops, name)
	}
	if stops[0].T != 0 || stops[len(stops)-1].T != 1 {
		return nil, fmt.Errorf("%w: %q must span [0, 1]", ErrInvalidStops, name)
	}
	for i, s := range stops {
		if math.IsNaN(s.T) || (i > 0 && s.T < stops[i-1].T) {
			return nil, fmt.Errorf("%w: %q stop %d out of order", ErrInvalidStops, name, i)
		}
		if !s.Color.valid() {
			return nil, fmt.Errorf("%w: %q stop %d color out of range", ErrInvalidStops, name, i)
		}
	}
	return &Map{
		name:  name,
		kind:  KindGradient,
		stops: append([]Stop(nil), stops...),
	}, nil
}

// NewBanded creates a cyclic banded map.
func NewBanded(name string, def Banded) (*Map, error) {
	if len(def.Bands) == 0 {
		return nil, fmt.Errorf("%w: %q has no bands", ErrInvalidBands, name)
	}
	if !(def.Count > 0) || math.IsInf(def.Count, 0) {
		return nil, fmt.Errorf("%w: %q repeat count %v", ErrInvalidBands, name, def.Count)
	}
	if !(def.Smoothness >= 0 && def.Smoothness <= 1) {
		return nil, fmt.Errorf("%w: %q smoothness %v", ErrInvalidBands, name, def.Smoothness)
	}

	total := 0.0
	for i, b := range def.Bands {
		if !(b.Weight > 0) || math.IsInf(b.Weight, 0) {
			return nil, fmt.Errorf("%w: %q band %d weight %v", ErrInvalidBands, name, i, b.Weight)
		}
		if !b.Color.valid() {
			return nil, fmt.Errorf("%w: %q band %d color out of range", ErrInvalidBands, name, i)
		}
		total += b.Weight
	}

	edges := make([]float64, len(def.Bands)+1)
	for i, b := range def.Bands {
		edges[i+1] = edges[i] + b.Weight/total
	}
	edges[len(edges)-1] = 1

	return &Map{
		name:       name,
		kind:       KindBanded,
		bands:      append([]Band(nil), def.Bands...),
		edges:      edges,
		count:      def.Count,
		smoothness: def.Smoothness,
	}, nil
}

// Name returns the display name of the map.
func (m *Map) Name() string { return m.name }

// Kind returns the variant of the map.
func (m *Map) Kind() Kind { return m.kind }

// Func returns m.At as a Func.
func (m *Map) Func() Func { return m.At }

// At samples the map at t. Values outside [0, 1] are clamped.
func (m *Map) At(t float64) Color {
	if m.kind == KindBanded {
		return m.bandedAt(t)
	}
	return m.gradientAt(t)
}

func (m *Map) gradientAt(t float64) Color {
	t = clamp01(t)
	for i := 0; i < len(m.stops)-1; i++ {
		a, b := m.stops[i], m.stops[i+1]
		if t >= a.T && t <= b.T {
			span := b.T - a.T
			if span == 0 {
				span = 1
			}
			return a.Color.Lerp(b.Color, (t-a.T)/span)
		}
	}
	return m.stops[len(m.stops)-1].Color
}

func (m *Map) bandedAt(t float64) Color {
	n := len(m.bands)
	repeated := math.Mod(clamp01(t)*m.count, 1)
	if repeated < 0 {
		repeated++
	}

	i := 0
	for i < n-1 && repeated > m.edges[i+1] {
		i++
	}

	start, end := m.edges[i], m.edges[i+1]
	blend := max(end-start, 1e-6) * m.smoothness / 2
	current := m.bands[i].Color
	if blend <= 0 {
		return current
	}

	if repeated < start+blend {
		prev := m.bands[(i-1+n)%n].Color
		return prev.Lerp(current, clamp01((repeated-start)/blend))
	}
	if repeated > end-blend {
		next := m.bands[(i+1)%n].Color
		return current.Lerp(next, clamp01((repeated-(end-blend))/blend))
	}
	return current
}

// Stops returns the stops of a gradient. For a banded map it returns one
// stop per band at the band's start edge, the last pinned to 1, which is a
// convenient approximation for previews.
func (m *Map) Stops() []Stop {
	if m.kind == KindGradient {
		return append([]Stop(nil), m.stops...)
	}
	stops := make([]Stop, len(m.bands))
	for i, b := range m.bands {
		t := m.edges[i]
		if i == len(m.bands)-1 {
			t = 1
		}
		stops[i] = Stop{T: t, Color: b.Color}
	}
	return stops
}

// Banded returns the band definition of a banded map, and false for a
// gradient.
func (m *Map) Banded() (Banded, bool) {
	if m.kind != KindBanded {
		return Banded{}, false
	}
	return Banded{
		Bands:      append([]Band(nil), m.bands...),
		Count:      m.count,
		Smoothness: m.smoothness,
	}, true
}
