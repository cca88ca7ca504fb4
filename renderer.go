package attractor

import (
	"fmt"
	"strings"

	"github.com/gogpu/attractor/colormap"
	"github.com/gogpu/attractor/composite"
	"github.com/gogpu/attractor/internal/orbit"
	"github.com/gogpu/attractor/viewport"
)

// Renderer renders attractor images. It keeps sample and hit buffers
// between calls, so repeated renders of similar size do not allocate.
//
// A Renderer is not safe for concurrent use. Use one per goroutine, or the
// package-level Render.
type Renderer struct {
	opts options

	samples orbit.Samples
	comp    *composite.Compositor

	// last LUT built without a cache
	lut    *colormap.LUT
	lutMap *colormap.Map
}

// NewRenderer returns a Renderer using the built-in formulas and color maps
// unless options say otherwise.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o, comp: composite.New()}
}

// Render renders req with a fresh Renderer.
// It is safe to call from multiple goroutines.
func Render(req Request) (*Result, error) {
	return NewRenderer().Render(req)
}

// Render samples the orbit described by req and draws it.
//
// The canvas is filled with the background first. An orbit that produces
// no samples yields a Degenerate result with world bounds [-1, 1]² and a
// nil error. Unknown color maps fall back to the registry default.
func (r *Renderer) Render(req Request) (*Result, error) {
	step, err := r.opts.formulas.Lookup(req.Formula)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownFormula, err)
	}
	img, err := newCanvas(req)
	if err != nil {
		return nil, err
	}
	fill(img, r.opts.background)
	w, h := img.Rect.Dx(), img.Rect.Dy()

	cmap := r.colorMap(req.ColorMap)
	res := &Result{Image: img, ColorMap: cmap.Name()}

	cfg := orbit.Config{
		Params:      req.Params,
		BurnIn:      req.BurnIn,
		Iterations:  req.Iterations,
		EscapeBound: r.opts.escapeBound,
	}
	if req.Seed != nil {
		cfg.SeedX, cfg.SeedY = req.Seed.X, req.Seed.Y
	}
	s := orbit.Sample(&r.samples, step, cfg)
	res.Samples = s.Len()
	res.Escaped = s.Escaped

	log := Logger()
	if s.Escaped || s.BurnInEscaped {
		log.Debug("attractor: orbit escaped",
			"formula", req.Formula,
			"samples", s.Len(),
			"burnIn", s.BurnInEscaped)
	}

	if s.Len() == 0 {
		res.Degenerate = true
		res.World = viewport.Degenerate()
		res.View = viewport.DegenerateMapping(w, h)
		return res, nil
	}

	switch {
	case req.World != nil:
		res.World = *req.World
	case req.Scale == ScaleFixed:
		res.World = viewport.FitFixed(req.View, w, h)
	default:
		res.World = viewport.FitAuto(s.Box, w, h)
	}
	res.View = viewport.NewMapping(res.World, w, h)

	res.Stats = r.comp.Composite(img, s.X, s.Y, res.View, r.lutFor(cmap), cmap, req.Coloring)

	log.Debug("attractor: rendered",
		"formula", req.Formula,
		"size", fmt.Sprintf("%dx%d", w, h),
		"samples", s.Len(),
		"plotted", res.Stats.Plotted,
		"hitPixels", res.Stats.HitPixels,
		"maxHits", res.Stats.MaxHits,
		"mode", req.Coloring.Mode,
		"colormap", cmap.Name())
	return res, nil
}

// colorMap resolves name, logging when it falls back to the default.
func (r *Renderer) colorMap(name string) *colormap.Map {
	reg := r.opts.colorMaps
	if m, ok := reg.Lookup(name); ok {
		return m
	}
	def := reg.Default()
	if strings.TrimSpace(name) != "" {
		Logger().Warn("attractor: unknown color map, using default",
			"name", name,
			"default", def.Name())
	}
	return def
}

func (r *Renderer) lutFor(m *colormap.Map) *colormap.LUT {
	if r.opts.lutCache != nil {
		return r.opts.lutCache.Get(m, r.opts.lutSize)
	}
	if r.lutMap != m || r.lut.Len() != r.opts.lutSize {
		r.lut = colormap.BuildLUT(m.At, r.opts.lutSize)
		r.lutMap = m
	}
	return r.lut
}
