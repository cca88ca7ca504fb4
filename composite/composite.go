// Package composite turns orbit samples into pixel colors.
//
// A [Compositor] projects samples through a [viewport.Mapping] and colors the
// pixels they land on according to a [Mode]: by iteration order, or by one
// of several transforms of the per-pixel hit count. Pixels no sample lands on
// are left untouched, so the caller fills the background beforehand.
package composite

import (
	"image"
	"math"
	"slices"

	"github.com/gogpu/attractor/colormap"
	"github.com/gogpu/attractor/viewport"
)

// Stats summarizes one Composite call.
type Stats struct {
	// Plotted is the number of samples that landed on the canvas.
	Plotted int
	// HitPixels is the number of distinct pixels hit.
	HitPixels int
	// MaxHits is the largest per-pixel hit count (density modes only).
	MaxHits uint32
}

// Compositor holds scratch buffers reused across calls.
// A Compositor is not safe for concurrent use.
type Compositor struct {
	hits    []uint32
	lastHit []uint32

	freq   map[uint32]int
	counts []uint32
	ranks  map[uint32]float64
}

// New returns an empty Compositor.
func New() *Compositor {
	return &Compositor{}
}

// Composite plots the samples (xs[i], ys[i]) onto dst using mapping m.
//
// Density modes index lut with t in [0, 1]; HybridDensityAge samples cmap
// directly and falls back to lut when cmap is nil. Plotted pixels are
// opaque. Pixels outside both m and dst are skipped.
func (c *Compositor) Composite(dst *image.RGBA, xs, ys []float64, m viewport.Mapping,
	lut *colormap.LUT, cmap *colormap.Map, opts Options) Stats {
	n := min(len(xs), len(ys))
	w, h := min(m.Width, dst.Rect.Dx()), min(m.Height, dst.Rect.Dy())
	if n == 0 || w <= 0 || h <= 0 {
		return Stats{}
	}
	opts = opts.Normalize()

	if opts.Mode == IterationOrder {
		return c.iterationOrder(dst, xs[:n], ys[:n], m, w, h, lut)
	}
	return c.density(dst, xs[:n], ys[:n], m, w, h, lut, cmap, opts)
}

func (c *Compositor) iterationOrder(dst *image.RGBA, xs, ys []float64, m viewport.Mapping,
	w, h int, lut *colormap.LUT) Stats {
	var s Stats
	n := float64(len(xs))
	top := float64(lut.Len() - 1)
	for i := range xs {
		px, py, ok := m.ToPixel(xs[i], ys[i])
		if !ok || px >= w || py >= h {
			continue
		}
		s.Plotted++
		col := lut.At(int(math.Round(float64(i) / n * top)))
		setPixel(dst, px, py, col.R, col.G, col.B)
	}
	return s
}

func (c *Compositor) density(dst *image.RGBA, xs, ys []float64, m viewport.Mapping,
	w, h int, lut *colormap.LUT, cmap *colormap.Map, opts Options) Stats {
	hybrid := opts.Mode == HybridDensityAge
	c.reset(w*h, hybrid)

	var s Stats
	for i := range xs {
		px, py, ok := m.ToPixel(xs[i], ys[i])
		if !ok || px >= w || py >= h {
			continue
		}
		s.Plotted++
		idx := py*w + px
		c.hits[idx]++
		if c.hits[idx] > s.MaxHits {
			s.MaxHits = c.hits[idx]
		}
		if hybrid {
			c.lastHit[idx] = uint32(i + 1)
		}
	}
	if s.MaxHits == 0 {
		return s
	}

	if opts.Mode == HitDensityPercentile {
		c.buildRanks()
	}

	ageSpan := float64(max(1, len(xs)-1))
	for idx, hits := range c.hits {
		if hits == 0 {
			continue
		}
		s.HitPixels++
		px, py := idx%w, idx/w

		if hybrid {
			t := hitToT(hits, s.MaxHits, opts)
			age := clamp01(float64(c.lastHit[idx]-1) / ageSpan)
			r, g, b := blend(sampleColor(cmap, lut, t), sampleColor(cmap, lut, age), opts.HybridBlend)
			setPixel(dst, px, py, r, g, b)
			continue
		}

		var t float64
		if opts.Mode == HitDensityPercentile {
			t = c.ranks[hits]
		} else {
			t = hitToT(hits, s.MaxHits, opts)
		}
		col := lut.At(lut.Index(t))
		setPixel(dst, px, py, col.R, col.G, col.B)
	}
	return s
}

// reset sizes and zeroes the hit buffers for size pixels.
func (c *Compositor) reset(size int, withAge bool) {
	if cap(c.hits) < size {
		c.hits = make([]uint32, size)
	} else {
		c.hits = c.hits[:size]
		clear(c.hits)
	}
	if !withAge {
		return
	}
	if cap(c.lastHit) < size {
		c.lastHit = make([]uint32, size)
	} else {
		c.lastHit = c.lastHit[:size]
		clear(c.lastHit)
	}
}

// buildRanks fills c.ranks with the empirical cumulative fraction of each
// distinct nonzero hit count: the share of hit pixels whose count is less
// than or equal to it.
func (c *Compositor) buildRanks() {
	if c.freq == nil {
		c.freq = make(map[uint32]int)
		c.ranks = make(map[uint32]float64)
	}
	clear(c.freq)
	clear(c.ranks)
	c.counts = c.counts[:0]

	active := 0
	for _, hits := range c.hits {
		if hits == 0 {
			continue
		}
		active++
		if c.freq[hits] == 0 {
			c.counts = append(c.counts, hits)
		}
		c.freq[hits]++
	}
	slices.Sort(c.counts)

	cumulative := 0
	for _, hits := range c.counts {
		cumulative += c.freq[hits]
		c.ranks[hits] = float64(cumulative) / float64(active)
	}
}

// hitToT maps a hit count to [0, 1] for the linear, log and gamma modes.
// Other modes use the linear ratio.
func hitToT(hits, maxHits uint32, opts Options) float64 {
	linear := clamp01(float64(hits) / float64(maxHits))
	switch opts.Mode {
	case HitDensityLog:
		k := opts.LogStrength
		den := math.Log1p(k * float64(maxHits))
		if den > 0 {
			return clamp01(math.Log1p(k*float64(hits)) / den)
		}
		return linear
	case HitDensityGamma:
		return clamp01(math.Pow(linear, opts.Gamma))
	}
	return linear
}

func sampleColor(cmap *colormap.Map, lut *colormap.LUT, t float64) colormap.Color {
	if cmap != nil {
		return cmap.At(t)
	}
	e := lut.Sample(t)
	return colormap.RGB(float64(e.R), float64(e.G), float64(e.B))
}

// blend moves base toward top by amount and rounds to bytes.
func blend(base, top colormap.Color, amount float64) (r, g, b uint8) {
	mix := base.Lerp(top, clamp01(amount)).RGBA()
	return mix.R, mix.G, mix.B
}

func setPixel(dst *image.RGBA, px, py int, r, g, b uint8) {
	off := dst.PixOffset(dst.Rect.Min.X+px, dst.Rect.Min.Y+py)
	p := dst.Pix[off : off+4 : off+4]
	p[0], p[1], p[2], p[3] = r, g, b, 255
}
