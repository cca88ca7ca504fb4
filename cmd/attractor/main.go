// Command attractor renders a strange attractor to a PNG file.
//
// Usage:
//
//	attractor -formula clifford -a -1.4 -b 1.6 -c 1 -d 0.7 -mode hit_density_log -o out.png
//	attractor -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/image/draw"

	"github.com/gogpu/attractor"
	"github.com/gogpu/attractor/colormap"
	"github.com/gogpu/attractor/composite"
	"github.com/gogpu/attractor/formula"
	"github.com/gogpu/attractor/overlay"
	"github.com/gogpu/attractor/viewport"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("attractor: %v", err)
	}
}

type config struct {
	formula    string
	params     formula.Params
	sliders    string
	iterations int
	burnIn     int
	seedX      float64
	seedY      float64

	cmap     string
	cmapFile string
	coloring composite.Options

	scale attractor.ScaleMode
	view  viewport.Transform

	width, height int
	ssaa          int
	axes          bool
	caption       bool
	output        string

	list    bool
	verbose bool
}

func parseFlags(args []string, errOut io.Writer) (*config, error) {
	cfg := &config{view: viewport.Identity}
	fs := flag.NewFlagSet("attractor", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&cfg.formula, "formula", "clifford", "formula id (see -list)")
	fs.Float64Var(&cfg.params.A, "a", -1.4, "parameter a")
	fs.Float64Var(&cfg.params.B, "b", 1.6, "parameter b")
	fs.Float64Var(&cfg.params.C, "c", 1.0, "parameter c")
	fs.Float64Var(&cfg.params.D, "d", 0.7, "parameter d")
	fs.StringVar(&cfg.sliders, "sliders", "", "four slider positions `a,b,c,d` in [0,100] mapped into the formula's domain; overrides -a..-d")
	fs.IntVar(&cfg.iterations, "iters", attractor.DefaultIterations, "number of samples")
	fs.IntVar(&cfg.burnIn, "burn", attractor.DefaultBurnIn, "discarded warm-up steps (max 5000)")
	fs.Float64Var(&cfg.seedX, "seed-x", 0, "orbit start x")
	fs.Float64Var(&cfg.seedY, "seed-y", 0, "orbit start y")

	fs.StringVar(&cfg.cmap, "cmap", colormap.DefaultName, "color map name")
	fs.StringVar(&cfg.cmapFile, "cmaps", "", "JSON `file` with extra color map definitions")
	fs.TextVar(&cfg.coloring.Mode, "mode", composite.IterationOrder, "coloring mode")
	fs.Float64Var(&cfg.coloring.LogStrength, "log-k", composite.DefaultLogStrength, "strength of hit_density_log")
	fs.Float64Var(&cfg.coloring.Gamma, "gamma", composite.DefaultGamma, "exponent of hit_density_gamma")
	fs.Float64Var(&cfg.coloring.HybridBlend, "blend", composite.DefaultHybridBlend, "age weight of hybrid_density_age")

	fs.TextVar(&cfg.scale, "scale", attractor.ScaleAuto, "world bounds: auto or fixed")
	fs.Float64Var(&cfg.view.Zoom, "zoom", 1, "zoom factor in fixed scale")
	fs.Float64Var(&cfg.view.OffsetX, "pan-x", 0, "horizontal pan in pixels in fixed scale")
	fs.Float64Var(&cfg.view.OffsetY, "pan-y", 0, "vertical pan in pixels in fixed scale")

	fs.IntVar(&cfg.width, "width", 1024, "image width")
	fs.IntVar(&cfg.height, "height", 1024, "image height")
	fs.IntVar(&cfg.ssaa, "ssaa", 1, "supersampling factor (1-4)")
	fs.BoolVar(&cfg.axes, "axes", false, "draw axes and grid")
	fs.BoolVar(&cfg.caption, "caption", false, "draw a summary caption")
	fs.StringVar(&cfg.output, "o", "attractor.png", "output file")

	fs.BoolVar(&cfg.list, "list", false, "list formulas and color maps, then exit")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.ssaa < 1 || cfg.ssaa > 4 {
		return nil, fmt.Errorf("-ssaa %d out of range 1-4", cfg.ssaa)
	}
	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	attractor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	maps, err := loadColorMaps(cfg.cmapFile)
	if err != nil {
		return err
	}
	formulas := formula.Default()

	if cfg.list {
		return list(stdout, formulas, maps)
	}

	if cfg.sliders != "" {
		pos, err := parseSliders(cfg.sliders)
		if err != nil {
			return err
		}
		f, ok := formulas.Formula(cfg.formula)
		if !ok {
			return fmt.Errorf("%w: %q", attractor.ErrUnknownFormula, cfg.formula)
		}
		cfg.params = f.Domain.Params(pos)
	}

	img, res, err := render(cfg, maps)
	if err != nil {
		return err
	}
	if res.Degenerate {
		attractor.Logger().Warn("orbit produced no samples", "formula", cfg.formula)
	}

	style := overlay.DefaultStyle()
	if cfg.axes || cfg.caption {
		face, err := overlay.NewFace(overlay.LabelSize(cfg.width, cfg.height))
		if err != nil {
			return err
		}
		defer func() { _ = face.Close() }()
		style.Face = face
	}
	if cfg.axes {
		overlay.DrawAxes(img, viewport.NewMapping(res.World, cfg.width, cfg.height), style)
	}
	if cfg.caption {
		name := cfg.formula
		if f, ok := formulas.Formula(cfg.formula); ok && f.Name != "" {
			name = f.Name
		}
		overlay.DrawCaption(img, overlay.Caption(name, cfg.params, res.Samples, res.World), style)
	}

	if err := attractor.SavePNG(cfg.output, img); err != nil {
		return err
	}
	log.Printf("saved %s (%dx%d, %d samples, %s)", cfg.output, cfg.width, cfg.height, res.Samples, res.ColorMap)
	return nil
}

// render draws the attractor at ssaa times the output size and scales the
// result down to width×height.
func render(cfg *config, maps *colormap.Registry) (*image.RGBA, *attractor.Result, error) {
	view := cfg.view
	view.OffsetX *= float64(cfg.ssaa)
	view.OffsetY *= float64(cfg.ssaa)

	r := attractor.NewRenderer(attractor.WithColorMaps(maps))
	res, err := r.Render(attractor.Request{
		Formula:    cfg.formula,
		Params:     cfg.params,
		Iterations: cfg.iterations,
		BurnIn:     cfg.burnIn,
		Seed:       &attractor.Point{X: cfg.seedX, Y: cfg.seedY},
		ColorMap:   cfg.cmap,
		Coloring:   cfg.coloring,
		Scale:      cfg.scale,
		View:       view,
		Width:      cfg.width * cfg.ssaa,
		Height:     cfg.height * cfg.ssaa,
	})
	if err != nil {
		return nil, nil, err
	}
	if cfg.ssaa == 1 {
		return res.Image, res, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, cfg.width, cfg.height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), res.Image, res.Image.Bounds(), draw.Src, nil)
	return dst, res, nil
}

// loadColorMaps returns the built-in maps, merged with the definitions in
// path when it is set.
func loadColorMaps(path string) (*colormap.Registry, error) {
	if path == "" {
		return colormap.Builtin(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	extra, err := colormap.ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return colormap.Builtin().Merge(extra...)
}

func parseSliders(s string) ([4]float64, error) {
	var pos [4]float64
	fields := strings.Split(s, ",")
	if len(fields) != len(pos) {
		return pos, fmt.Errorf("-sliders wants 4 values, got %d", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return pos, fmt.Errorf("-sliders: %w", err)
		}
		pos[i] = v
	}
	return pos, nil
}

func list(w io.Writer, formulas *formula.Registry, maps *colormap.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMULA\tNAME\tMAP")
	for _, id := range formulas.IDs() {
		f, _ := formulas.Formula(id)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.ID, f.Name, f.Desc)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "COLOR MAP\tKIND\t")
	for _, m := range maps.Maps() {
		fmt.Fprintf(tw, "%s\t%s\t\n", m.Name(), m.Kind())
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "MODE\t\t")
	for _, m := range composite.Modes() {
		fmt.Fprintf(tw, "%s\t\t\n", m)
	}
	return tw.Flush()
}
