package attractor

import (
	"image/color"

	"github.com/gogpu/attractor/colormap"
	"github.com/gogpu/attractor/formula"
	"github.com/gogpu/attractor/internal/orbit"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Built-in formulas and color maps
//	r := attractor.NewRenderer()
//
//	// Share LUTs between renderers
//	cache := colormap.NewLUTCache(0)
//	r := attractor.NewRenderer(attractor.WithLUTCache(cache))
type Option func(*options)

type options struct {
	formulas    *formula.Registry
	colorMaps   *colormap.Registry
	lutSize     int
	lutCache    *colormap.LUTCache
	background  color.RGBA
	escapeBound float64
}

func defaultOptions() options {
	return options{
		formulas:    formula.Default(),
		colorMaps:   colormap.Builtin(),
		lutSize:     colormap.DefaultLUTSize,
		background:  DefaultBackground,
		escapeBound: orbit.DefaultEscapeBound,
	}
}

// WithFormulas replaces the built-in formula registry. A nil registry is
// ignored.
func WithFormulas(r *formula.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.formulas = r
		}
	}
}

// WithColorMaps replaces the built-in color map registry. A nil registry
// is ignored.
//
// Example:
//
//	maps, _ := colormap.ParseDefinitions(data)
//	reg, _ := colormap.Builtin().Merge(maps...)
//	r := attractor.NewRenderer(attractor.WithColorMaps(reg))
func WithColorMaps(r *colormap.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.colorMaps = r
		}
	}
}

// WithLUTSize sets the number of lookup table entries. Sizes below 2
// select colormap.DefaultLUTSize.
func WithLUTSize(n int) Option {
	return func(o *options) {
		if n < 2 {
			n = colormap.DefaultLUTSize
		}
		o.lutSize = n
	}
}

// WithLUTCache makes the renderer fetch lookup tables from c. The cache may
// be shared between renderers on different goroutines.
func WithLUTCache(c *colormap.LUTCache) Option {
	return func(o *options) {
		o.lutCache = c
	}
}

// WithBackground sets the color the canvas is filled with before plotting.
func WithBackground(c color.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithEscapeBound sets the coordinate magnitude past which an orbit stops.
// Non-positive values select the default of 1e6.
func WithEscapeBound(bound float64) Option {
	return func(o *options) {
		if !(bound > 0) {
			bound = orbit.DefaultEscapeBound
		}
		o.escapeBound = bound
	}
}
