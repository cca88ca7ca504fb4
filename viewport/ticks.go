package viewport

import (
	"math"
	"strconv"
)

// Tick density limits: one tick per ~65 pixels, between 10 and 20 ticks.
const (
	tickSpacingPx = 65
	minTicks      = 10
	maxTicks      = 20
)

// Ticks returns a "nice" step (1, 2, 2.5 or 5 times a power of ten) and the
// tick values covering [lo, hi] for an axis spanPx pixels long.
func Ticks(lo, hi, spanPx float64) (step float64, values []float64) {
	span := math.Max(hi-lo, epsilon)
	target := clamp(math.Round(spanPx/tickSpacingPx), minTicks, maxTicks)
	step = niceStep(span, target)
	if !isFinite(step) || !isFinite(lo) || !isFinite(hi) {
		return step, nil
	}

	for _, v := range Steps(lo, hi, step, 2*maxTicks) {
		values = append(values, roundTo12(v))
	}
	return step, values
}

// Steps returns the multiples of step in [lo, hi+step/2], at most limit+1
// of them. Values that collapse onto their predecessor at the float
// precision of the range are dropped.
func Steps(lo, hi, step float64, limit int) []float64 {
	if !(step > 0) || !isFinite(lo) || !isFinite(hi) || limit < 0 {
		return nil
	}
	start := math.Ceil(lo/step) * step
	n := math.Floor((hi + step*0.5 - start) / step)
	if !(n >= 0) {
		return nil
	}
	n = math.Min(n, float64(limit))

	vs := make([]float64, 0, int(n)+1)
	for i := 0; i <= int(n); i++ {
		v := start + float64(i)*step
		if len(vs) > 0 && v <= vs[len(vs)-1] {
			continue
		}
		vs = append(vs, v)
	}
	return vs
}

// epsilon matches the smallest float64 step above 1.
const epsilon = 2.220446049250313e-16

func niceStep(span, target float64) float64 {
	rough := span / math.Max(1, target)
	mag := math.Pow(10, math.Floor(math.Log10(math.Max(rough, epsilon))))
	residual := rough / mag

	switch {
	case residual <= 1:
		return mag
	case residual <= 2:
		return 2 * mag
	case residual <= 2.5:
		return 2.5 * mag
	case residual <= 5:
		return 5 * mag
	}
	return 10 * mag
}

// roundTo12 removes accumulated float noise, keeping 12 decimals.
func roundTo12(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 12, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// FormatTick formats a tick value with just enough decimals for step.
func FormatTick(v, step float64) string {
	decimals := 0
	for decimals < 6 {
		scaled := step * math.Pow(10, float64(decimals))
		if math.Abs(math.Round(scaled)-scaled) <= 1e-8 {
			break
		}
		decimals++
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if s == "-0" || (len(s) > 1 && s[0] == '-' && isZeroString(s[1:])) {
		s = s[1:]
	}
	return s
}

func isZeroString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '.' {
			return false
		}
	}
	return true
}
