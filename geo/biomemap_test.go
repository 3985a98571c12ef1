package geo

import (
	"math"
	"testing"

	"github.com/rjh-mopjones/randlebrot/various"
)

func init() {
	various.Verbose = false
}

func TestGenerateSizes(t *testing.T) {
	m := Generate(42, 64, 32)
	if m.Width != 64 || m.Height != 32 {
		t.Fatalf("size = %dx%d", m.Width, m.Height)
	}
	if got := len(m.ToBiomeImage()); got != 64*32*4 {
		t.Errorf("biome image has %d bytes, want %d", got, 64*32*4)
	}
	for _, l := range AllLayers() {
		if got := len(m.ToLayerImage(l)); got != 64*32*4 {
			t.Errorf("layer %v image has %d bytes", l, got)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	m := Generate(42, 0, 10)
	if m.Width != 0 || len(m.Biomes) != 0 {
		t.Errorf("expected empty map, got %dx%d", m.Width, m.Height)
	}
	if m.Resources == nil {
		t.Error("resources should never be nil")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(7, 48, 24)
	b := Generate(7, 48, 24)
	for i := range a.Biomes {
		if a.Biomes[i] != b.Biomes[i] || a.Continentalness[i] != b.Continentalness[i] {
			t.Fatalf("cell %d differs between runs", i)
		}
	}
	if a.Resources.Len() != b.Resources.Len() {
		t.Errorf("resource counts differ: %d vs %d", a.Resources.Len(), b.Resources.Len())
	}
}

func TestLayerRanges(t *testing.T) {
	m := Generate(42, 64, 32)
	for i := range m.Biomes {
		if c := m.Continentalness[i]; c < -1 || c > 1 {
			t.Fatalf("continentalness %v out of range", c)
		}
		if e := m.Erosion[i]; e < 0 || e > 1 {
			t.Fatalf("erosion %v out of range", e)
		}
		if h := m.Humidity[i]; h < 0 || h > 1 {
			t.Fatalf("humidity %v out of range", h)
		}
		if d := m.Tectonic[i]; d < 0 || d > 1 {
			t.Fatalf("tectonic %v out of range", d)
		}
		if p := m.Political[i]; p < 0 || p > 1 {
			t.Fatalf("political %v out of range", p)
		}
		b := m.Biomes[i]
		if b.IsWater() != math.IsInf(m.TradeCost[i], 1) {
			t.Fatalf("cell %d: %v with trade cost %v", i, b, m.TradeCost[i])
		}
		if b.IsWater() && m.Political[i] != 0 {
			t.Fatalf("cell %d: water with political score %v", i, m.Political[i])
		}
	}
}

func TestAccessorsOutOfBounds(t *testing.T) {
	m := Generate(42, 16, 8)
	if _, ok := m.BiomeAt(-1, 0); ok {
		t.Error("BiomeAt(-1, 0) should fail")
	}
	if _, ok := m.HumidityAt(16, 0); ok {
		t.Error("HumidityAt(16, 0) should fail")
	}
	if _, ok := m.TradeCostAt(0, 8); ok {
		t.Error("TradeCostAt(0, 8) should fail")
	}
	b, ok := m.BiomeAt(3, 4)
	if !ok || b != m.Biomes[m.Index(3, 4)] {
		t.Errorf("BiomeAt(3, 4) = %v, %v", b, ok)
	}
}

func TestGenerateRegion(t *testing.T) {
	m := GenerateRegion(42, 100, 50, 64, 32, 512, 1)
	if m.Width != 32 || m.Height != 32 {
		t.Fatalf("region size = %dx%d", m.Width, m.Height)
	}
	if m.Resources.CellsWithResources() != 0 {
		t.Error("regions should not carry resources")
	}
	if got := len(GenerateBiomeOnly(42, 100, 50, 64, 32, 512, 0)); got != 32*32*4 {
		t.Errorf("preview has %d bytes", got)
	}
	if GenerateBiomeOnly(42, 0, 0, 64, 0, 512, 0) != nil {
		t.Error("zero sized preview should be nil")
	}
}

func TestGenerateMesoFullProgress(t *testing.T) {
	const size = 40
	p := NewProgress(size * size)
	GenerateMesoFull(42, 0, 0, 128, size, 512, 0, p)
	if !p.Done() {
		for _, l := range ProgressLayers() {
			t.Logf("%v: %d/%d", l, p.Get(l), p.Total())
		}
		t.Error("progress should be complete")
	}
	if got := p.Overall(); got != 1 {
		t.Errorf("Overall = %v, want 1", got)
	}
}

func TestGenerateMesoFullReusedProgress(t *testing.T) {
	const size = 16
	p := NewProgress(size * size)
	p.Add(LayerProgressErosion, size*size/2)
	p.Add(LayerProgressHumidity, 3)
	for run := 0; run < 2; run++ {
		GenerateMesoFull(7, 0, 0, 32, size, 512, 1, p)
		for _, l := range ProgressLayers() {
			if got := p.Get(l); got != size*size {
				t.Errorf("run %d, %v: got %d items, want %d", run, l, got, size*size)
			}
		}
	}
	GenerateMesoFull(7, 0, 0, 32, size, 512, 1, nil)
}

func TestParseLayer(t *testing.T) {
	for _, l := range AllLayers() {
		got, err := ParseLayer(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLayer(%q) = %v, %v", l.String(), got, err)
		}
	}
	if _, err := ParseLayer("lava"); err == nil {
		t.Error("expected error for unknown layer")
	}
}
