package attractor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/attractor/colormap"
	"github.com/gogpu/attractor/composite"
	"github.com/gogpu/attractor/formula"
	"github.com/gogpu/attractor/viewport"
)

func cliffordRequest(w, h int) Request {
	return Request{
		Formula:    "clifford",
		Params:     formula.Params{A: -1.4, B: 1.6, C: 1.0, D: 0.7},
		Iterations: 20_000,
		BurnIn:     DefaultBurnIn,
		Seed:       &Point{X: 0.1, Y: 0.1},
		Width:      w,
		Height:     h,
	}
}

func testFormulas(t *testing.T, formulas ...formula.Formula) *formula.Registry {
	t.Helper()
	reg, err := formula.NewRegistry(formulas...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func assertAll(t *testing.T, img *image.RGBA, want color.RGBA) {
	t.Helper()
	r := img.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderDegenerate(t *testing.T) {
	blowup := formula.Formula{
		ID: "blowup",
		Step: func(x, y, a, b, c, d float64) (float64, float64) {
			return math.Inf(1), y
		},
	}
	r := NewRenderer(WithFormulas(testFormulas(t, blowup)))

	res, err := r.Render(Request{Formula: "blowup", Iterations: 1000, Width: 8, Height: 6})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !res.Degenerate || res.Samples != 0 || !res.Escaped {
		t.Errorf("Degenerate = %v, Samples = %d, Escaped = %v", res.Degenerate, res.Samples, res.Escaped)
	}
	if res.World != viewport.Degenerate() {
		t.Errorf("World = %+v, want [-1, 1]²", res.World)
	}
	if res.View.Width != 8 || res.View.Height != 6 {
		t.Errorf("View size = %dx%d", res.View.Width, res.View.Height)
	}
	assertAll(t, res.Image, DefaultBackground)
}

func TestRenderZeroIterations(t *testing.T) {
	req := cliffordRequest(4, 4)
	req.Iterations = 0
	res, err := Render(req)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Degenerate {
		t.Error("zero iterations should be degenerate")
	}
	assertAll(t, res.Image, DefaultBackground)
}

func TestRenderUnknownFormula(t *testing.T) {
	_, err := Render(Request{Formula: "no_such_formula", Iterations: 10, Width: 4, Height: 4})
	if !errors.Is(err, ErrUnknownFormula) {
		t.Errorf("error = %v, want ErrUnknownFormula", err)
	}
	if !errors.Is(err, formula.ErrNotFound) {
		t.Errorf("error = %v, want it to wrap formula.ErrNotFound", err)
	}
}

func TestRenderInvalidCanvas(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"zero width", Request{Width: 0, Height: 10}},
		{"zero height", Request{Width: 10, Height: 0}},
		{"negative", Request{Width: -1, Height: 5}},
		{"empty target", Request{Target: image.NewRGBA(image.Rect(3, 3, 3, 9))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Formula = "clifford"
			tt.req.Iterations = 10
			res, err := Render(tt.req)
			if !errors.Is(err, ErrInvalidCanvas) {
				t.Errorf("error = %v, want ErrInvalidCanvas", err)
			}
			if res != nil {
				t.Error("result should be nil on error")
			}
		})
	}
}

func TestRenderAutoFitPlotsEverySample(t *testing.T) {
	for _, mode := range composite.Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			req := cliffordRequest(64, 48)
			req.Coloring.Mode = mode
			res, err := Render(req)
			if err != nil {
				t.Fatal(err)
			}
			if res.Samples != req.Iterations {
				t.Fatalf("Samples = %d, want %d", res.Samples, req.Iterations)
			}
			if res.Stats.Plotted != res.Samples {
				t.Errorf("Plotted = %d, want all %d samples", res.Stats.Plotted, res.Samples)
			}
			if res.Stats.HitPixels == 0 && mode != composite.IterationOrder {
				t.Error("no pixels hit")
			}
			if res.ColorMap != colormap.DefaultName {
				t.Errorf("ColorMap = %q, want %q", res.ColorMap, colormap.DefaultName)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	req := cliffordRequest(48, 48)
	req.Coloring.Mode = composite.HybridDensityAge
	req.ColorMap = "magma"

	r := NewRenderer()
	first, err := r.Render(req)
	if err != nil {
		t.Fatal(err)
	}
	firstPix := append([]byte(nil), first.Image.Pix...)

	// The renderer reuses its buffers; a render in between must not leak.
	other := cliffordRequest(20, 30)
	other.Params.A = 1.7
	if _, err := r.Render(other); err != nil {
		t.Fatal(err)
	}

	second, err := r.Render(req)
	if err != nil {
		t.Fatal(err)
	}
	fresh, err := Render(req)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(firstPix, second.Image.Pix) || !bytes.Equal(firstPix, fresh.Image.Pix) {
		t.Error("identical requests produced different images")
	}
}

func TestRenderIntoTarget(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 30, 30))
	target := full.SubImage(image.Rect(10, 5, 25, 20)).(*image.RGBA)

	req := cliffordRequest(0, 0)
	req.Target = target
	res, err := Render(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Image != target {
		t.Error("Image is not the caller's target")
	}
	if res.View.Width != 15 || res.View.Height != 15 {
		t.Errorf("View size = %dx%d, want 15x15", res.View.Width, res.View.Height)
	}
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			a := full.RGBAAt(x, y).A
			inside := image.Pt(x, y).In(target.Rect)
			if inside && a != 255 {
				t.Fatalf("pixel (%d, %d) inside target not painted", x, y)
			}
			if !inside && a != 0 {
				t.Fatalf("pixel (%d, %d) outside target was painted", x, y)
			}
		}
	}
}

func TestRenderWorldOverride(t *testing.T) {
	world := viewport.Bounds{MinX: -3, MaxX: 3, MinY: -2, MaxY: 2}
	req := cliffordRequest(60, 40)
	req.World = &world
	req.Scale = ScaleFixed

	res, err := Render(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.World != world {
		t.Errorf("World = %+v, want %+v", res.World, world)
	}
}

func TestRenderFixedScale(t *testing.T) {
	req := cliffordRequest(80, 60)
	req.Scale = ScaleFixed
	req.View = viewport.Transform{OffsetX: 12, OffsetY: -4, Zoom: 2}

	res, err := Render(req)
	if err != nil {
		t.Fatal(err)
	}
	want := viewport.FitFixed(req.View, 80, 60)
	if res.World != want {
		t.Errorf("World = %+v, want %+v", res.World, want)
	}
}

func TestRenderSeed(t *testing.T) {
	var first Point
	calls := 0
	seedEcho := formula.Formula{
		ID: "seedEcho",
		Step: func(x, y, a, b, c, d float64) (float64, float64) {
			if calls == 0 {
				first = Pt(x, y)
			}
			calls++
			return x, y
		},
	}
	r := NewRenderer(WithFormulas(testFormulas(t, seedEcho)))
	if _, err := r.Render(Request{Formula: "seedEcho", Iterations: 3, Seed: &Point{X: 0.25, Y: -0.5}, Width: 4, Height: 4}); err != nil {
		t.Fatal(err)
	}
	if first != Pt(0.25, -0.5) {
		t.Errorf("first step saw %+v, want the seed", first)
	}

	calls = 0
	if _, err := r.Render(Request{Formula: "seedEcho", Iterations: 3, Width: 4, Height: 4}); err != nil {
		t.Fatal(err)
	}
	if first != (Point{}) {
		t.Errorf("nil seed started at %+v, want the origin", first)
	}
}

func TestRenderColorMapFallback(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	req := cliffordRequest(16, 16)
	req.ColorMap = "no such map"
	res, err := Render(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.ColorMap != colormap.DefaultName {
		t.Errorf("ColorMap = %q, want %q", res.ColorMap, colormap.DefaultName)
	}
	if !strings.Contains(buf.String(), "unknown color map") {
		t.Errorf("expected a warning, got %q", buf.String())
	}

	buf.Reset()
	req.ColorMap = ""
	if _, err := Render(req); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty name should not warn, got %q", buf.String())
	}
}

func TestRenderDebugLogging(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	if _, err := Render(cliffordRequest(16, 16)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"attractor: rendered", "formula=clifford", "samples=20000"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSharedLUTCache(t *testing.T) {
	cache := colormap.NewLUTCache(8)
	req := cliffordRequest(16, 16)
	req.ColorMap = "viridis"

	for range 2 {
		if _, err := NewRenderer(WithLUTCache(cache), WithLUTSize(256)).Render(req); err != nil {
			t.Fatal(err)
		}
	}
	st := cache.Stats()
	if st.Misses != 1 || st.Hits != 1 {
		t.Errorf("cache stats = %+v, want 1 miss and 1 hit", st)
	}
}

func TestRenderBackground(t *testing.T) {
	bg := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	req := cliffordRequest(10, 10)
	req.Iterations = 0
	res, err := NewRenderer(WithBackground(bg)).Render(req)
	if err != nil {
		t.Fatal(err)
	}
	assertAll(t, res.Image, bg)
}

func TestOptionDefaults(t *testing.T) {
	r := NewRenderer(WithLUTSize(1), WithEscapeBound(-5), WithFormulas(nil), WithColorMaps(nil))
	if r.opts.lutSize != colormap.DefaultLUTSize {
		t.Errorf("lutSize = %d", r.opts.lutSize)
	}
	if r.opts.escapeBound != 1e6 {
		t.Errorf("escapeBound = %v", r.opts.escapeBound)
	}
	if r.opts.formulas != formula.Default() || r.opts.colorMaps != colormap.Builtin() {
		t.Error("nil registries should keep the built-ins")
	}
}

func TestEscapeBoundOption(t *testing.T) {
	// x doubles each step: 1, 2, 4, 8, then 16 exceeds 10.
	double := formula.Formula{
		ID:   "double",
		Step: func(x, y, a, b, c, d float64) (float64, float64) { return 2 * x, y },
	}
	r := NewRenderer(WithFormulas(testFormulas(t, double)), WithEscapeBound(10))
	res, err := r.Render(Request{Formula: "double", Iterations: 100, Seed: &Point{X: 0.5}, Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	if res.Samples != 4 || !res.Escaped {
		t.Errorf("Samples = %d, Escaped = %v; want 4, true", res.Samples, res.Escaped)
	}
}

func TestParseScaleMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ScaleMode
		wantErr bool
	}{
		{"auto", ScaleAuto, false},
		{"", ScaleAuto, false},
		{" Fixed ", ScaleFixed, false},
		{"FIXED", ScaleFixed, false},
		{"zoom", ScaleAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScaleMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScaleMode(%q) error = %v", tt.in, err)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownScaleMode) {
				t.Errorf("error = %v, want ErrUnknownScaleMode", err)
			}
			if got != tt.want {
				t.Errorf("ParseScaleMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScaleModeText(t *testing.T) {
	var m ScaleMode
	if err := m.UnmarshalText([]byte("fixed")); err != nil || m != ScaleFixed {
		t.Fatalf("UnmarshalText = %v, %v", m, err)
	}
	text, err := m.MarshalText()
	if err != nil || string(text) != "fixed" {
		t.Errorf("MarshalText = %q, %v", text, err)
	}
	if _, err := ScaleMode(7).MarshalText(); !errors.Is(err, ErrUnknownScaleMode) {
		t.Errorf("MarshalText(7) error = %v", err)
	}
}

func TestEncodePNG(t *testing.T) {
	res, err := Render(cliffordRequest(24, 16))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, res.Image); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != res.Image.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), res.Image.Bounds())
	}
}

func TestSavePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	fill(img, DefaultBackground)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}

func BenchmarkRender(b *testing.B) {
	req := cliffordRequest(512, 512)
	req.Iterations = DefaultIterations
	req.Coloring.Mode = composite.HitDensityLog
	r := NewRenderer()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := r.Render(req); err != nil {
			b.Fatal(err)
		}
	}
}
