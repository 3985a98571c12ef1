package chunk

import (
	"testing"

	"github.com/rjh-mopjones/randlebrot/noise"
)

// countingStrategy returns x + 1000*y + detail/10 and counts its calls.
type countingStrategy struct {
	name  string
	calls int
}

func (s *countingStrategy) Generate(x, y float64, detail int) float64 {
	s.calls++
	return x + 1000*y + float64(detail)/10
}

func (s *countingStrategy) Name() string { return s.name }

func TestWorldToChunk(t *testing.T) {
	tests := []struct {
		x, y, size int
		want       ChunkCoord
		lx, ly     int
	}{
		{0, 0, 32, ChunkCoord{0, 0}, 0, 0},
		{31, 32, 32, ChunkCoord{0, 1}, 31, 0},
		{-1, -1, 32, ChunkCoord{-1, -1}, 31, 31},
		{-32, -33, 32, ChunkCoord{-1, -2}, 0, 31},
		{130, -129, 64, ChunkCoord{2, -3}, 2, 63},
	}
	for _, tt := range tests {
		got, lx, ly := WorldToChunk(tt.x, tt.y, tt.size)
		if got != tt.want || lx != tt.lx || ly != tt.ly {
			t.Errorf("WorldToChunk(%d, %d, %d) = %v, %d, %d; want %v, %d, %d",
				tt.x, tt.y, tt.size, got, lx, ly, tt.want, tt.lx, tt.ly)
		}
	}
}

func TestCacheSampleMatchesStrategy(t *testing.T) {
	s := &countingStrategy{name: "test"}
	c := NewCache(4, 8, 1)
	for _, p := range [][2]float64{{0, 0}, {7, 3}, {-1, -1}, {-8.5, 12.2}, {20, -5}} {
		want := s.Generate(float64(floorInt(p[0])), float64(floorInt(p[1])), 1)
		if got := c.Sample(p[0], p[1], s); got != want {
			t.Errorf("Sample(%v, %v) = %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestCacheHitDoesNotRegenerate(t *testing.T) {
	s := &countingStrategy{name: "test"}
	c := NewCache(4, 8, 0)
	c.Sample(1, 1, s)
	calls := s.calls
	if calls != 64 {
		t.Fatalf("first miss sampled %d cells, want 64", calls)
	}
	c.Sample(5, 6, s)
	if s.calls != calls {
		t.Errorf("hit resampled the strategy (%d calls)", s.calls-calls)
	}
}

func TestCacheEvictsLeastRecentlyTouched(t *testing.T) {
	s := &countingStrategy{name: "test"}
	c := NewCache(2, 4, 0)
	a, b, d := ChunkCoord{0, 0}, ChunkCoord{1, 0}, ChunkCoord{2, 0}

	c.Get(a, s)
	c.Get(b, s)
	c.Get(a, s) // a is now the most recent
	c.Get(d, s) // evicts b

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if !c.Contains(a, "test") || !c.Contains(d, "test") {
		t.Error("a and d should be cached")
	}
	if c.Contains(b, "test") {
		t.Error("b should have been evicted")
	}
	ta := c.Get(a, s).LastTouched()
	td := c.Get(d, s).LastTouched()
	if td <= ta {
		t.Errorf("ticks should increase with every access, got %d then %d", ta, td)
	}
}

func TestCacheKeysIncludeStrategy(t *testing.T) {
	s1 := &countingStrategy{name: "one"}
	s2 := &countingStrategy{name: "two"}
	c := NewCache(8, 4, 0)
	c1 := c.Get(ChunkCoord{0, 0}, s1)
	c2 := c.Get(ChunkCoord{0, 0}, s2)
	if c1 == c2 {
		t.Fatal("different strategies share a chunk")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestHierarchyRoutesByDetail(t *testing.T) {
	s := &countingStrategy{name: "test"}
	h := NewHierarchy(nil)

	if got := h.Sample(3, 4, 0, s); got != s.Generate(3, 4, DetailMacro) {
		t.Errorf("macro sample = %v", got)
	}
	if got := h.Sample(3, 4, 1, s); got != s.Generate(3, 4, DetailMeso) {
		t.Errorf("meso sample = %v", got)
	}
	if got := h.Sample(3, 4, 5, s); got != s.Generate(3, 4, DetailMicro) {
		t.Errorf("micro sample = %v", got)
	}
	if got := h.Stats(); got != (Stats{1, 1, 1}) {
		t.Errorf("Stats = %+v", got)
	}
	if h.Micro().Size != MicroSize || h.Meso().Size != MesoSize || h.Macro().Size != MacroSize {
		t.Error("unexpected tier sizes")
	}

	h.Clear()
	if got := h.Stats(); got != (Stats{}) {
		t.Errorf("after Clear Stats = %+v", got)
	}
}

func TestHierarchyWithNoiseStrategy(t *testing.T) {
	cont := noise.NewContinentalness(42)
	h := NewHierarchy(&CacheConfig{MacroCapacity: 1, MesoCapacity: 1, MicroCapacity: 1})
	for _, p := range [][2]float64{{0, 0}, {100, 40}, {-50, 10}} {
		want := cont.Generate(p[0], p[1], DetailMeso)
		if got := h.Sample(p[0], p[1], DetailMeso, cont); got != want {
			t.Errorf("Sample(%v) = %v, want %v", p, got, want)
		}
	}
	if h.Meso().Len() != 1 {
		t.Errorf("meso tier holds %d chunks, capacity 1", h.Meso().Len())
	}
}
