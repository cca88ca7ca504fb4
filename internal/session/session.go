// Package session holds the state of an interactive viewing session and
// turns it into render requests.
package session

import (
	"math"

	"github.com/gogpu/attractor"
	"github.com/gogpu/attractor/colormap"
	"github.com/gogpu/attractor/composite"
	"github.com/gogpu/attractor/formula"
	"github.com/gogpu/attractor/viewport"
)

// Iteration limits of a session.
const (
	MinIterations     = 1000
	MaxIterations     = 10_000_000
	DefaultIterations = 200_000

	// resizeFloor is the least number of samples drawn while resizing.
	resizeFloor = 10_000
)

// Slider positions run from 0 to 100.
const (
	sliderMin  = 0
	sliderMax  = 100
	SliderStep = 0.1
)

// ReducedIterations returns the sample count used on frames where the window
// was resized: 60% of n, but no fewer than 10000.
func ReducedIterations(n int) int {
	return max(resizeFloor, int(math.Round(float64(n)*0.6)))
}

// WheelZoom converts a wheel delta in pixels (positive scrolls down) into a
// zoom factor.
func WheelZoom(deltaY float64) float64 {
	return math.Exp(-deltaY * 0.0025)
}

// Session is the mutable state behind a viewer. It is not safe for
// concurrent use.
type Session struct {
	formulas *formula.Registry
	ids      []string
	maps     []string
	modes    []composite.Mode

	formulaIdx, mapIdx, modeIdx int

	// Sliders are the parameter positions in [0, 100], ordered a, b, c, d.
	Sliders [4]float64
	// Active is the index of the slider the nudge keys move.
	Active int

	Iterations int
	BurnIn     int
	Coloring   composite.Options

	Scale attractor.ScaleMode
	View  viewport.Transform

	Axes    bool
	Caption bool

	dirty bool
}

// New returns a session over the given registries, starting at the formula
// id with every slider centred. Unknown ids start at the first formula.
func New(formulas *formula.Registry, maps *colormap.Registry, id string) *Session {
	s := &Session{
		formulas:   formulas,
		ids:        formulas.IDs(),
		maps:       maps.Names(),
		modes:      composite.Modes(),
		Sliders:    [4]float64{50, 50, 50, 50},
		Iterations: DefaultIterations,
		BurnIn:     attractor.DefaultBurnIn,
		View:       viewport.Identity,
		dirty:      true,
	}
	for i, v := range s.ids {
		if v == id {
			s.formulaIdx = i
		}
	}
	return s
}

// Dirty reports whether the state changed since the last MarkClean.
func (s *Session) Dirty() bool { return s.dirty }

// MarkClean records that the current state has been rendered.
func (s *Session) MarkClean() { s.dirty = false }

// Touch marks the state as changed.
func (s *Session) Touch() { s.dirty = true }

// Formula returns the current formula.
func (s *Session) Formula() formula.Formula {
	f, _ := s.formulas.Formula(s.ids[s.formulaIdx])
	return f
}

// ColorMap returns the current color map name.
func (s *Session) ColorMap() string {
	if len(s.maps) == 0 {
		return ""
	}
	return s.maps[s.mapIdx]
}

// SetColorMap selects the map called name. It reports false when the
// session has no map by that exact name.
func (s *Session) SetColorMap(name string) bool {
	for i, n := range s.maps {
		if n == name {
			s.mapIdx = i
			s.dirty = true
			return true
		}
	}
	return false
}

// Params maps the sliders into the current formula's domain.
func (s *Session) Params() formula.Params {
	return s.Formula().Domain.Params(s.Sliders)
}

// NextFormula moves delta formulas along the registry, wrapping around.
func (s *Session) NextFormula(delta int) {
	s.formulaIdx = wrap(s.formulaIdx+delta, len(s.ids))
	s.dirty = true
}

// NextColorMap moves delta maps along the registry, wrapping around.
func (s *Session) NextColorMap(delta int) {
	s.mapIdx = wrap(s.mapIdx+delta, len(s.maps))
	s.dirty = true
}

// NextMode cycles the coloring mode.
func (s *Session) NextMode(delta int) {
	s.modeIdx = wrap(s.modeIdx+delta, len(s.modes))
	s.Coloring.Mode = s.modes[s.modeIdx]
	s.dirty = true
}

// SetMode selects a coloring mode.
func (s *Session) SetMode(m composite.Mode) {
	for i, v := range s.modes {
		if v == m {
			s.modeIdx = i
			s.Coloring.Mode = m
			s.dirty = true
		}
	}
}

// ToggleScale switches between auto and fixed scaling.
func (s *Session) ToggleScale() {
	if s.Scale == attractor.ScaleFixed {
		s.Scale = attractor.ScaleAuto
	} else {
		s.Scale = attractor.ScaleFixed
	}
	s.dirty = true
}

// Pan moves the fixed view by a pixel delta and switches to fixed scaling.
func (s *Session) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	s.Scale = attractor.ScaleFixed
	s.View = s.View.Pan(dx, dy)
	s.dirty = true
}

// ZoomAt zooms the fixed view around a canvas pixel and switches to fixed
// scaling.
func (s *Session) ZoomAt(factor, x, y float64, width, height int) {
	s.Scale = attractor.ScaleFixed
	s.View = s.View.ZoomAt(factor, x, y, width, height)
	s.dirty = true
}

// ResetView restores the identity view.
func (s *Session) ResetView() {
	s.View = viewport.Identity
	s.dirty = true
}

// Nudge moves the active slider by delta positions, clamped to [0, 100].
func (s *Session) Nudge(delta float64) {
	i := min(max(s.Active, 0), len(s.Sliders)-1)
	s.Sliders[i] = math.Max(sliderMin, math.Min(sliderMax, s.Sliders[i]+delta))
	s.dirty = true
}

// ScaleIterations multiplies the sample count by factor within
// [MinIterations, MaxIterations].
func (s *Session) ScaleIterations(factor float64) {
	n := math.Round(float64(s.Iterations) * factor)
	s.Iterations = int(math.Max(MinIterations, math.Min(MaxIterations, n)))
	s.dirty = true
}

// Request returns the render request for a width×height canvas. When the
// window was resized this frame the sample count is reduced.
func (s *Session) Request(width, height int, resized bool) attractor.Request {
	iters := s.Iterations
	if resized {
		iters = ReducedIterations(iters)
	}
	return attractor.Request{
		Formula:    s.ids[s.formulaIdx],
		Params:     s.Params(),
		Iterations: iters,
		BurnIn:     s.BurnIn,
		ColorMap:   s.ColorMap(),
		Coloring:   s.Coloring,
		Scale:      s.Scale,
		View:       s.View,
		Width:      width,
		Height:     height,
	}
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
