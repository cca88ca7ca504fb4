package orbit

import (
	"math"
	"testing"

	"github.com/gogpu/attractor/formula"
)

func mustStep(t testing.TB, id string) formula.StepFunc {
	t.Helper()
	step, err := formula.Lookup(id)
	if err != nil {
		t.Fatal(err)
	}
	return step
}

func TestSampleClassic(t *testing.T) {
	s := Sample(nil, mustStep(t, "classic_sqrt"), Config{
		Params:     formula.Params{A: 1, B: 5},
		BurnIn:     120,
		Iterations: 1000,
	})
	if s.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", s.Len())
	}
	if s.Escaped || s.BurnInEscaped {
		t.Errorf("unexpected escape: %+v", s)
	}
	if !(s.Box.MaxX > s.Box.MinX && s.Box.MaxY > s.Box.MinY) {
		t.Errorf("degenerate box %+v", s.Box)
	}
	for i := range s.X {
		if !s.Box.Contains(s.X[i], s.Y[i]) {
			t.Fatalf("sample %d (%v, %v) outside box %+v", i, s.X[i], s.Y[i], s.Box)
		}
	}
}

func TestSampleEscapesImmediately(t *testing.T) {
	inf := func(x, y, a, b, c, d float64) (float64, float64) { return math.Inf(1), 0 }
	s := Sample(nil, inf, Config{Iterations: 500, BurnIn: 0})
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if !s.Escaped {
		t.Error("Escaped = false")
	}
	if !s.Box.IsEmpty() {
		t.Errorf("Box = %+v, want empty", s.Box)
	}
}

func TestSampleTruncatesOnEscape(t *testing.T) {
	// Doubles every step: 1, 2, 4, ... exceeds 1000 after 10 samples.
	double := func(x, y, a, b, c, d float64) (float64, float64) { return 2 * x, y }
	s := Sample(nil, double, Config{SeedX: 0.5, Iterations: 100, EscapeBound: 1000})
	if s.Len() != 10 || !s.Escaped {
		t.Fatalf("Len() = %d, Escaped = %v; want 10, true", s.Len(), s.Escaped)
	}
	if s.X[9] != 512 {
		t.Errorf("last sample = %v, want 512", s.X[9])
	}
}

func TestSampleNaNEscapes(t *testing.T) {
	nan := func(x, y, a, b, c, d float64) (float64, float64) { return x + 1, math.NaN() }
	s := Sample(nil, nan, Config{Iterations: 10})
	if s.Len() != 0 || !s.Escaped {
		t.Errorf("Len() = %d, Escaped = %v", s.Len(), s.Escaped)
	}
}

func TestSampleBurnInRestartsFromOrigin(t *testing.T) {
	// Escapes during warm-up, then restarts from (0, 0) whatever the seed.
	calls := 0
	step := func(x, y, a, b, c, d float64) (float64, float64) {
		calls++
		if calls == 3 {
			return math.Inf(1), 0
		}
		return x + 1, y
	}
	s := Sample(nil, step, Config{SeedX: 3, SeedY: 4, BurnIn: 50, Iterations: 3})
	if !s.BurnInEscaped {
		t.Error("BurnInEscaped = false")
	}
	if calls != 6 {
		t.Errorf("step called %d times, want 3 burn-in + 3 samples", calls)
	}
	want := []float64{1, 2, 3}
	for i, x := range s.X {
		if x != want[i] || s.Y[i] != 0 {
			t.Errorf("sample %d = (%v, %v), want (%v, 0)", i, x, s.Y[i], want[i])
		}
	}
}

func TestSampleHugeIterationsEscaping(t *testing.T) {
	inf := func(x, y, a, b, c, d float64) (float64, float64) { return math.Inf(1), 0 }
	s := Sample(nil, inf, Config{Iterations: math.MaxInt})
	if s.Len() != 0 || !s.Escaped {
		t.Fatalf("Len() = %d, Escaped = %v", s.Len(), s.Escaped)
	}
	if cap(s.X) > maxPrealloc {
		t.Errorf("reserved %d samples, want at most %d", cap(s.X), maxPrealloc)
	}
}

func TestSampleGrowsPastPrealloc(t *testing.T) {
	step := func(x, y, a, b, c, d float64) (float64, float64) { return y, x }
	n := maxPrealloc + 10
	s := Sample(nil, step, Config{SeedX: 0.5, Iterations: n})
	if s.Len() != n {
		t.Errorf("Len() = %d, want %d", s.Len(), n)
	}
}

func TestSampleClampsBurnIn(t *testing.T) {
	calls := 0
	step := func(x, y, a, b, c, d float64) (float64, float64) {
		calls++
		return x, y
	}
	Sample(nil, step, Config{BurnIn: 1_000_000, Iterations: 0})
	if calls != MaxBurnIn {
		t.Errorf("burn-in steps = %d, want %d", calls, MaxBurnIn)
	}

	calls = 0
	Sample(nil, step, Config{BurnIn: -5, Iterations: -5})
	if calls != 0 {
		t.Errorf("negative counts took %d steps", calls)
	}
}

func TestSampleParams(t *testing.T) {
	var got formula.Params
	step := func(x, y, a, b, c, d float64) (float64, float64) {
		got = formula.Params{A: a, B: b, C: c, D: d}
		return x, y
	}
	want := formula.Params{A: 1, B: 2, C: 3, D: 4}
	Sample(nil, step, Config{Params: want, Iterations: 1})
	if got != want {
		t.Errorf("step saw %+v, want %+v", got, want)
	}
}

func TestSampleReusesBuffers(t *testing.T) {
	step := mustStep(t, "clifford")
	cfg := Config{
		SeedX: 0.1, SeedY: 0.1,
		Params:     formula.Params{A: -1.4, B: 1.6, C: 1.0, D: 0.7},
		Iterations: 2000,
	}
	s := Sample(nil, step, cfg)
	first := append([]float64(nil), s.X...)
	ptr := &s.X[0]

	cfg.Iterations = 1500
	s = Sample(s, step, cfg)
	if &s.X[0] != ptr {
		t.Error("buffer reallocated for a smaller orbit")
	}
	for i := range s.X {
		if s.X[i] != first[i] {
			t.Fatalf("sample %d differs between runs", i)
		}
	}

	allocs := testing.AllocsPerRun(10, func() { Sample(s, step, cfg) })
	if allocs != 0 {
		t.Errorf("steady-state allocations = %v, want 0", allocs)
	}
}

func BenchmarkSample(b *testing.B) {
	step := mustStep(b, "classic_sqrt")
	cfg := Config{Params: formula.Params{A: 1, B: 5}, BurnIn: 120, Iterations: 120_000}
	s := Sample(nil, step, cfg)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sample(s, step, cfg)
	}
}
