package overlay

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/attractor/viewport"
)

const (
	tickHalf  = 6
	maxMinors = 40
)

// AxisPosition returns the pixel at which the axis for the other coordinate
// crosses an axis spanning [lo, hi] over spanPx pixels. When 0 is out of
// range the axis is pinned to the nearer edge.
func AxisPosition(lo, hi float64, spanPx int) int {
	if spanPx <= 0 {
		return 0
	}
	last := spanPx - 1
	if lo <= 0 && hi >= 0 && hi > lo {
		return int(math.Round(-lo / (hi - lo) * float64(last)))
	}
	if math.Abs(lo) <= math.Abs(hi) {
		return 0
	}
	return last
}

// DrawAxes draws a grid, the coordinate axes and labeled ticks for the
// world-to-pixel mapping m. Pixel (0, 0) of m is dst.Bounds().Min.
func DrawAxes(dst draw.Image, m viewport.Mapping, st Style) {
	w, h := m.Width, m.Height
	world := m.World
	if w <= 0 || h <= 0 || !(world.Width() > 0) || !(world.Height() > 0) {
		return
	}
	origin := dst.Bounds().Min
	px := func(v float64) int { return int(math.Round((v - world.MinX) / world.Width() * float64(w-1))) }
	py := func(v float64) int { return int(math.Round((v - world.MinY) / world.Height() * float64(h-1))) }

	xStep, xs := viewport.Ticks(world.MinX, world.MaxX, float64(w))
	yStep, ys := viewport.Ticks(world.MinY, world.MaxY, float64(h))
	originVisible := world.Contains(0, 0)
	skipY := func(v float64) bool { return originVisible && math.Abs(v) <= yStep*0.5 }

	c := canvas{dst: dst, origin: origin, w: w, h: h}

	if minor := xStep / 2; world.Width()/minor <= maxMinors {
		for _, v := range viewport.Steps(world.MinX, world.MaxX, minor, maxMinors) {
			c.vline(px(v), 0, h, st.Minor)
		}
	}
	if minor := yStep / 2; world.Height()/minor <= maxMinors {
		for _, v := range viewport.Steps(world.MinY, world.MaxY, minor, maxMinors) {
			c.hline(0, w, py(v), st.Minor)
		}
	}

	for _, v := range xs {
		c.vline(px(v), 0, h, st.Grid)
	}
	for _, v := range ys {
		if !skipY(v) {
			c.hline(0, w, py(v), st.Grid)
		}
	}

	xAxisY := AxisPosition(world.MinY, world.MaxY, h)
	yAxisX := AxisPosition(world.MinX, world.MaxX, w)
	c.hline(0, w, xAxisY, st.Axis)
	c.vline(yAxisX, 0, h, st.Axis)

	face := st.face()
	for _, v := range xs {
		x := px(v)
		c.vline(x, xAxisY-tickHalf, xAxisY+tickHalf+1, st.Tick)
		c.text(face, viewport.FormatTick(v, xStep), x+4, xAxisY-10, st.Text)
	}
	for _, v := range ys {
		if skipY(v) {
			continue
		}
		y := py(v)
		c.hline(yAxisX-tickHalf, yAxisX+tickHalf+1, y, st.Tick)
		c.text(face, viewport.FormatTick(v, yStep), yAxisX+9, y-4, st.Text)
	}
}

// canvas clips drawing to a w×h region of dst starting at origin.
type canvas struct {
	dst    draw.Image
	origin image.Point
	w, h   int
}

func (c canvas) fill(r image.Rectangle, col color.RGBA) {
	if col.A == 0 {
		return
	}
	r = r.Intersect(image.Rect(0, 0, c.w, c.h))
	if r.Empty() {
		return
	}
	draw.Draw(c.dst, r.Add(c.origin), image.NewUniform(col), image.Point{}, draw.Over)
}

func (c canvas) hline(x0, x1, y int, col color.RGBA) {
	c.fill(image.Rect(x0, y, x1, y+1), col)
}

func (c canvas) vline(x, y0, y1 int, col color.RGBA) {
	c.fill(image.Rect(x, y0, x+1, y1), col)
}

// text draws s with its baseline starting at (x, y).
func (c canvas) text(face font.Face, s string, x, y int, col color.RGBA) {
	if col.A == 0 || s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(c.origin.X+x, c.origin.Y+y),
	}
	d.DrawString(s)
}
