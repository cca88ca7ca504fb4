package attractor

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/attractor/composite"
	"github.com/gogpu/attractor/formula"
	"github.com/gogpu/attractor/viewport"
)

// Typical sampling counts for interactive use.
const (
	DefaultIterations = 120_000
	DefaultBurnIn     = 120
)

// ScaleMode selects how world bounds are chosen.
type ScaleMode uint8

const (
	// ScaleAuto fits the bounding box of the orbit.
	ScaleAuto ScaleMode = iota
	// ScaleFixed derives bounds from a fixed frame and Request.View.
	ScaleFixed
)

// String returns "auto" or "fixed".
func (m ScaleMode) String() string {
	switch m {
	case ScaleAuto:
		return "auto"
	case ScaleFixed:
		return "fixed"
	}
	return fmt.Sprintf("ScaleMode(%d)", m)
}

// ParseScaleMode parses "auto" or "fixed", ignoring case and surrounding
// space. The empty string is ScaleAuto.
func ParseScaleMode(s string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ScaleAuto, nil
	case "fixed":
		return ScaleFixed, nil
	}
	return ScaleAuto, fmt.Errorf("%w: %q", ErrUnknownScaleMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m ScaleMode) MarshalText() ([]byte, error) {
	if m > ScaleFixed {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScaleMode, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ScaleMode) UnmarshalText(text []byte) error {
	v, err := ParseScaleMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Request describes one render.
type Request struct {
	// Formula is the registry id of the map to iterate.
	Formula string
	Params  formula.Params

	// Iterations is the maximum number of plotted samples and BurnIn the
	// number of discarded warm-up steps (at most 5000). Negative values
	// mean zero.
	Iterations int
	BurnIn     int

	// ColorMap names a color map. Unknown names fall back to the
	// registry default.
	ColorMap string
	Coloring composite.Options

	Scale ScaleMode
	// View is the pan and zoom applied in ScaleFixed mode.
	View viewport.Transform

	// World, when set, is used as the world bounds and bypasses both
	// scale modes.
	World *viewport.Bounds

	// Seed is the orbit start. Nil means the origin.
	Seed *Point

	// Width and Height size a new canvas. They are ignored when Target is
	// set, in which case the render draws into Target's bounds.
	Width, Height int
	Target        *image.RGBA
}

// Result is the output of a render.
type Result struct {
	// Image is the rendered canvas: Request.Target when one was given.
	Image *image.RGBA

	// World is the region of the plane the canvas covers and View the
	// mapping between world and pixel coordinates.
	World viewport.Bounds
	View  viewport.Mapping

	// Samples is the number of orbit points produced. Escaped reports that
	// the orbit left the escape bound early.
	Samples int
	Escaped bool

	// Degenerate reports an orbit with no samples. The image holds only
	// the background.
	Degenerate bool

	// ColorMap is the name of the map actually used.
	ColorMap string

	Stats composite.Stats
}
