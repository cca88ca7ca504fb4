// Command viewer shows an attractor in a window and re-renders it as the
// view and parameters change.
//
// Controls:
//
//	drag           pan (switches to fixed scale)
//	wheel          zoom at the cursor (switches to fixed scale)
//	space          toggle auto/fixed scale
//	0              reset pan and zoom
//	f / shift+f    next / previous formula
//	c / shift+c    next / previous color map
//	m / shift+m    next / previous coloring mode
//	1-4            select parameter a, b, c or d
//	up / down      nudge the selected parameter (shift: 10x)
//	+ / -          double / halve the iterations
//	x              toggle axes
//	i              toggle caption
//	s              save a screenshot
//	esc            quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"github.com/gogpu/attractor"
	"github.com/gogpu/attractor/colormap"
	"github.com/gogpu/attractor/composite"
	"github.com/gogpu/attractor/formula"
	"github.com/gogpu/attractor/internal/session"
	"github.com/gogpu/attractor/overlay"
)

func main() {
	var (
		formulaID = flag.String("formula", "clifford", "initial formula id")
		cmap      = flag.String("cmap", colormap.DefaultName, "initial color map")
		iters     = flag.Int("iters", session.DefaultIterations, "samples per frame")
		width     = flag.Int("width", 960, "window width")
		height    = flag.Int("height", 720, "window height")
		verbose   = flag.Bool("v", false, "debug logging")
		mode      = composite.IterationOrder
	)
	flag.TextVar(&mode, "mode", composite.IterationOrder, "initial coloring mode")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	attractor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := session.New(formula.Default(), colormap.Builtin(), *formulaID)
	if !s.SetColorMap(*cmap) {
		if m, ok := colormap.Builtin().Lookup(*cmap); ok {
			s.SetColorMap(m.Name())
		}
	}
	s.SetMode(mode)
	s.Iterations = *iters

	face, err := overlay.NewFace(overlay.LabelSize(*width, *height))
	if err != nil {
		log.Fatalf("viewer: %v", err)
	}
	defer func() { _ = face.Close() }()

	g := &viewer{
		s:        s,
		renderer: attractor.NewRenderer(),
		face:     face,
	}
	ebiten.SetWindowTitle("attractor")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("viewer: %v", err)
	}
}

type viewer struct {
	s        *session.Session
	renderer *attractor.Renderer
	face     font.Face

	w, h    int
	resized bool
	reduced bool // last frame drew fewer samples

	canvas   *image.RGBA
	frame    *ebiten.Image
	dragging bool
	dragX    int
	dragY    int
}

func (g *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()
	return nil
}

func (g *viewer) handleKeys() {
	s := g.s
	dir := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		dir = -1
	}
	just := inpututil.IsKeyJustPressed

	switch {
	case just(ebiten.KeyF):
		s.NextFormula(dir)
	case just(ebiten.KeyC):
		s.NextColorMap(dir)
	case just(ebiten.KeyM):
		s.NextMode(dir)
	case just(ebiten.KeySpace):
		s.ToggleScale()
	case just(ebiten.Key0):
		s.ResetView()
	case just(ebiten.KeyX):
		s.Axes = !s.Axes
		s.Touch()
	case just(ebiten.KeyI):
		s.Caption = !s.Caption
		s.Touch()
	case just(ebiten.KeyEqual), just(ebiten.KeyKPAdd):
		s.ScaleIterations(2)
	case just(ebiten.KeyMinus), just(ebiten.KeyKPSubtract):
		s.ScaleIterations(0.5)
	case just(ebiten.KeyS):
		g.screenshot()
	}

	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if just(k) {
			s.Active = i
		}
	}

	step := session.SliderStep
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step *= 10
	}
	if repeat(ebiten.KeyArrowUp) {
		s.Nudge(step)
	}
	if repeat(ebiten.KeyArrowDown) {
		s.Nudge(-step)
	}
}

// repeat reports a key press, repeating while the key is held.
func repeat(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 20 && d%3 == 0)
}

func (g *viewer) handleMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragging = true
	case g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.s.Pan(float64(x-g.dragX), float64(y-g.dragY))
	default:
		g.dragging = false
	}
	g.dragX, g.dragY = x, y

	// Wheel offsets are in lines; one line is about 100 browser pixels.
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.s.ZoomAt(session.WheelZoom(-dy*100), float64(x), float64(y), g.w, g.h)
	}
}

func (g *viewer) Draw(screen *ebiten.Image) {
	if g.w <= 0 || g.h <= 0 {
		return
	}
	if g.s.Dirty() || g.reduced {
		g.render()
	}
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

func (g *viewer) render() {
	if g.canvas == nil || g.canvas.Rect.Dx() != g.w || g.canvas.Rect.Dy() != g.h {
		g.canvas = image.NewRGBA(image.Rect(0, 0, g.w, g.h))
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(g.w, g.h)
	}

	req := g.s.Request(g.w, g.h, g.resized)
	req.Target = g.canvas
	start := time.Now()
	res, err := g.renderer.Render(req)
	if err != nil {
		attractor.Logger().Warn("viewer: render failed", "err", err)
		return
	}
	attractor.Logger().Debug("viewer: frame", "samples", res.Samples, "elapsed", time.Since(start))

	style := overlay.DefaultStyle()
	style.Face = g.face
	if g.s.Axes {
		overlay.DrawAxes(g.canvas, res.View, style)
	}
	if g.s.Caption {
		f := g.s.Formula()
		lines := overlay.Caption(f.Name, req.Params, res.Samples, res.World)
		lines = append(lines,
			"color map: "+res.ColorMap,
			"mode: "+req.Coloring.Mode.String(),
			"scale: "+req.Scale.String(),
			fmt.Sprintf("slider: %c", "abcd"[g.s.Active]))
		overlay.DrawCaption(g.canvas, lines, style)
	}

	g.frame.WritePixels(g.canvas.Pix)
	g.reduced = g.resized
	g.resized = false
	g.s.MarkClean()
}

func (g *viewer) screenshot() {
	if g.canvas == nil {
		return
	}
	name := fmt.Sprintf("attractor-%s.png", time.Now().Format("20060102-150405"))
	if err := attractor.SavePNG(name, g.canvas); err != nil {
		attractor.Logger().Warn("viewer: screenshot failed", "err", err)
		return
	}
	log.Printf("saved %s", name)
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		if g.w != 0 {
			g.resized = true
		}
		g.w, g.h = outsideWidth, outsideHeight
		g.s.Touch()
	}
	return g.w, g.h
}

var _ ebiten.Game = (*viewer)(nil)
