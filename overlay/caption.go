package overlay

import (
	"fmt"
	"image"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/gogpu/attractor/formula"
	"github.com/gogpu/attractor/viewport"
)

const captionPad = 8

// Caption returns the lines of a render summary: formula name, parameters,
// sample count and world ranges.
func Caption(name string, p formula.Params, samples int, world viewport.Bounds) []string {
	cx, cy := world.Center()
	return []string{
		"formula: " + name,
		"a: " + number(p.A, 6),
		"b: " + number(p.B, 6),
		"c: " + number(p.C, 6),
		"d: " + number(p.D, 6),
		"iterations: " + strconv.Itoa(samples),
		fmt.Sprintf("x range: %s to %s", number(world.MinX, 3), number(world.MaxX, 3)),
		fmt.Sprintf("y range: %s to %s", number(world.MinY, 3), number(world.MaxY, 3)),
		fmt.Sprintf("range centre: (%s, %s)", number(cx, 3), number(cy, 3)),
	}
}

// number formats v with at most digits decimals and no trailing zeros.
func number(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if digits > 0 {
		for s[len(s)-1] == '0' {
			s = s[:len(s)-1]
		}
		if s[len(s)-1] == '.' {
			s = s[:len(s)-1]
		}
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// DrawCaption draws lines on a panel in the top-left corner of dst and
// returns the panel bounds. Nothing is drawn for no lines.
func DrawCaption(dst draw.Image, lines []string, st Style) image.Rectangle {
	if len(lines) == 0 {
		return image.Rectangle{}
	}
	face := st.face()
	metrics := face.Metrics()
	lineH := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	textW := 0
	for _, l := range lines {
		textW = max(textW, font.MeasureString(face, l).Ceil())
	}

	b := dst.Bounds()
	c := canvas{dst: dst, origin: b.Min, w: b.Dx(), h: b.Dy()}
	panel := image.Rect(0, 0, textW+2*captionPad, lineH*len(lines)+2*captionPad).
		Intersect(image.Rect(0, 0, c.w, c.h))
	c.fill(panel, st.Panel)
	for i, l := range lines {
		c.text(face, l, captionPad, captionPad+ascent+i*lineH, st.Text)
	}
	return panel.Add(b.Min)
}
