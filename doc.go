// Package attractor renders strange attractors: orbits of 2D iterated maps
// drawn as images.
//
// # Overview
//
// A render iterates a named formula from a seed, discards a warm-up prefix,
// fits world bounds to the samples (or derives them from a fixed frame with
// pan and zoom), and colors the pixels the samples land on with a color map.
//
//	res, err := attractor.Render(attractor.Request{
//	    Formula:    "clifford",
//	    Params:     formula.Params{A: -1.4, B: 1.6, C: 1.0, D: 0.7},
//	    Iterations: 200_000,
//	    BurnIn:     120,
//	    ColorMap:   "Magma",
//	    Coloring:   composite.Options{Mode: composite.HitDensityLog},
//	    Width:      800,
//	    Height:     800,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	attractor.SavePNG("clifford.png", res.Image)
//
// # Architecture
//
// The library is organized into:
//   - formula: registry of step functions and their parameter domains
//   - colormap: gradient and banded color maps, lookup tables, JSON definitions
//   - viewport: world bounds, pan/zoom transforms, world-to-pixel mapping, axis ticks
//   - composite: iteration-order and hit-density coloring
//   - overlay: axes and captions drawn over a finished render
//
// # Coordinate System
//
// World x grows to the right and world y grows downward, matching image
// rows. Pixel (0, 0) is the top-left corner of the canvas.
//
// # Determinism
//
// Rendering is a pure function of the request and the registries: the same
// request always produces the same pixels.
package attractor
