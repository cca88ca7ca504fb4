package formula

import "math"

// Params are the four map parameters a, b, c and d.
type Params struct {
	A, B, C, D float64
}

// Range is a closed parameter interval.
type Range struct {
	Min, Max float64
}

// At returns the value at position p of the range, where p runs from 0 (Min)
// to 100 (Max). Positions outside [0, 100] are clamped; a non-finite position
// maps to Min.
func (r Range) At(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		p = 0
	}
	t := min(max(p/100, 0), 1)
	return r.Min + (r.Max-r.Min)*t
}

// Domain holds suggested parameter ranges for a formula. The engine never
// reads it; callers use it to seed sliders and randomization.
type Domain struct {
	A, B, C, D Range
}

// DefaultDomain is used for formulas that declare no domain.
var DefaultDomain = Domain{
	A: Range{-80, 80},
	B: Range{-20, 20},
	C: Range{-20, 20},
	D: Range{-20, 20},
}

// IsZero reports whether d is the zero Domain.
func (d Domain) IsZero() bool {
	return d == Domain{}
}

// Params maps four slider positions in [0, 100], ordered a, b, c, d, into
// the domain.
func (d Domain) Params(sliders [4]float64) Params {
	if d.IsZero() {
		d = DefaultDomain
	}
	return Params{
		A: d.A.At(sliders[0]),
		B: d.B.At(sliders[1]),
		C: d.C.At(sliders[2]),
		D: d.D.At(sliders[3]),
	}
}
