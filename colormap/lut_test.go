package colormap

import (
	"math"
	"sync"
	"testing"
)

func TestBuildLUTGray(t *testing.T) {
	lut := BuildLUT(Resolve("Gray").At, 256)
	if lut.Len() != 256 {
		t.Fatalf("Len() = %d, want 256", lut.Len())
	}
	for i := 0; i < 256; i++ {
		c := lut.At(i)
		if int(c.R) != i || c.R != c.G || c.G != c.B || c.A != 255 {
			t.Fatalf("At(%d) = %v", i, c)
		}
	}
}

func TestBuildLUTDefaultSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if got := BuildLUT(Resolve("Turbo").At, size).Len(); got != DefaultLUTSize {
			t.Errorf("BuildLUT(size=%d).Len() = %d, want %d", size, got, DefaultLUTSize)
		}
	}
}

func TestLUTIndex(t *testing.T) {
	lut := BuildLUT(Resolve("Turbo").At, 11)
	tests := []struct {
		t    float64
		want int
	}{
		{-1, 0},
		{0, 0},
		{0.05, 0},
		{0.1, 1},
		{0.55, 5},
		{0.999, 9},
		{1, 10},
		{2, 10},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := lut.Index(tt.t); got != tt.want {
			t.Errorf("Index(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
	if lut.Sample(1) != lut.At(10) || lut.At(99) != lut.At(10) || lut.At(-5) != lut.At(0) {
		t.Error("Sample/At do not clamp to the table")
	}
}

func TestLUTMatchesMap(t *testing.T) {
	m := Resolve("Magma")
	lut := BuildLUT(m.At, DefaultLUTSize)
	if lut.At(0) != m.At(0).RGBA() || lut.At(DefaultLUTSize-1) != m.At(1).RGBA() {
		t.Error("LUT endpoints differ from the map")
	}
}

func TestLUTCacheHitsAndMisses(t *testing.T) {
	c := NewLUTCache(8)
	m := Resolve("Viridis")

	first := c.Get(m, 512)
	second := c.Get(m, 512)
	if first != second {
		t.Error("second Get built a new table")
	}
	if c.Get(m, 0).Len() != DefaultLUTSize {
		t.Error("size 0 did not select the default size")
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 2 || s.Len != 2 {
		t.Errorf("Stats() = %+v, want 1 hit, 2 misses, 2 entries", s)
	}
}

func TestLUTCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLUTCache(4)
	m := Resolve("Ocean")

	keep := c.Get(m, 2)
	for size := 3; size <= 5; size++ {
		c.Get(m, size)
	}
	c.Get(m, 2) // refresh
	c.Get(m, 6) // 5 entries > 4: evict down to 3

	s := c.Stats()
	if s.Len != 3 || s.Evictions != 2 {
		t.Fatalf("Stats() = %+v, want 3 entries and 2 evictions", s)
	}
	if c.Get(m, 2) != keep {
		t.Error("recently used table was evicted")
	}
	before := c.Stats().Misses
	c.Get(m, 3)
	if c.Stats().Misses != before+1 {
		t.Error("oldest table survived eviction")
	}
}

func TestLUTCacheConcurrent(t *testing.T) {
	c := NewLUTCache(4)
	maps := Builtin().Maps()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				m := maps[(g+i)%len(maps)]
				if c.Get(m, 64).Len() != 64 {
					t.Error("wrong table size")
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 4 {
		t.Errorf("Len() = %d exceeds soft limit after eviction", c.Len())
	}
}

func BenchmarkBuildLUT(b *testing.B) {
	fn := Resolve("Turbo").At
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		BuildLUT(fn, DefaultLUTSize)
	}
}

func BenchmarkLUTCacheGet(b *testing.B) {
	c := NewLUTCache(0)
	m := Resolve("Turbo")
	c.Get(m, DefaultLUTSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(m, DefaultLUTSize)
	}
}
