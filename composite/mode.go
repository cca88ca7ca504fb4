package composite

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognized mode names.
var ErrUnknownMode = errors.New("composite: unknown coloring mode")

// Mode selects how samples become pixel colors.
type Mode uint8

const (
	// IterationOrder colors each sample by its position in the orbit.
	IterationOrder Mode = iota
	// HitDensityLinear colors pixels by hits/maxHits.
	HitDensityLinear
	// HitDensityLog colors pixels by log1p(k*hits)/log1p(k*maxHits).
	HitDensityLog
	// HitDensityGamma colors pixels by (hits/maxHits)^gamma.
	HitDensityGamma
	// HitDensityPercentile colors pixels by the rank of their hit count
	// among all hit pixels.
	HitDensityPercentile
	// HybridDensityAge blends linear density with the time of the last hit.
	HybridDensityAge

	modeCount
)

var modeNames = [modeCount]string{
	IterationOrder:       "iteration_order",
	HitDensityLinear:     "hit_density_linear",
	HitDensityLog:        "hit_density_log",
	HitDensityGamma:      "hit_density_gamma",
	HitDensityPercentile: "hit_density_percentile",
	HybridDensityAge:     "hybrid_density_age",
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// String returns the wire name of the mode.
func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode parses a wire name such as "hit_density_log". Surrounding
// whitespace and case are ignored; the empty string is IterationOrder.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return IterationOrder, nil
	}
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return IterationOrder, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m >= modeCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, m)
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Defaults for the zero fields of Options.
const (
	DefaultLogStrength = 9
	DefaultGamma       = 0.6
	DefaultHybridBlend = 0.3

	minLogStrength = 0.01
	minGamma       = 0.05
)

// Options configures a Composite call. Zero fields select the defaults.
type Options struct {
	Mode Mode

	// LogStrength is k of HitDensityLog, at least 0.01.
	LogStrength float64

	// Gamma is the exponent of HitDensityGamma, at least 0.05.
	Gamma float64

	// HybridBlend is the weight of age in HybridDensityAge, in [0, 1].
	HybridBlend float64
}

// Normalize returns o with defaults applied and knobs clamped.
func (o Options) Normalize() Options {
	o.LogStrength = math.Max(minLogStrength, orDefault(o.LogStrength, DefaultLogStrength))
	o.Gamma = math.Max(minGamma, orDefault(o.Gamma, DefaultGamma))
	o.HybridBlend = clamp01(orDefault(o.HybridBlend, DefaultHybridBlend))
	return o
}

// orDefault maps zero and NaN to def.
func orDefault(v, def float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return def
	}
	return v
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
