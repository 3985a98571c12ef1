package geo

import (
	"math"
	"testing"

	"github.com/rjh-mopjones/randlebrot/biome"
)

func TestTradeCost(t *testing.T) {
	for _, b := range []biome.Biome{biome.Sea, biome.Ice} {
		if c := TradeCost(b, 0.5); !math.IsInf(c, 1) {
			t.Errorf("%v: trade cost %v, want +Inf", b, c)
		}
		if IsPassable(b) {
			t.Errorf("%v should not be passable", b)
		}
	}
	for _, e := range []float64{0, 0.3, 1} {
		plains := TradeCost(biome.Plains, e)
		forest := TradeCost(biome.Forest, e)
		mountain := TradeCost(biome.Mountain, e)
		if !(plains < forest && forest < mountain) {
			t.Errorf("erosion %v: want plains < forest < mountain, got %v %v %v", e, plains, forest, mountain)
		}
	}
	if got := TradeCost(biome.Mountain, 1); math.Abs(got-8) > 1e-9 {
		t.Errorf("fully eroded mountain = %v, want 8", got)
	}
}

func TestTradeCostLandRange(t *testing.T) {
	for _, b := range biome.All() {
		if b.IsWater() {
			continue
		}
		for _, e := range []float64{0, 0.5, 1} {
			c := TradeCost(b, e)
			if c < 0.8 || c > 10 {
				t.Errorf("%v erosion %v: cost %v out of [0.8, 10]", b, e, c)
			}
		}
	}
}

func TestPoliticalScore(t *testing.T) {
	if s := PoliticalScoreSimple(biome.Sea, 20, 0.5); s != 0 {
		t.Errorf("water simple score = %v", s)
	}
	if s := PoliticalScore(biome.Ice, 20, 0.5, -0.5, 0, 0, 0); s != 0 {
		t.Errorf("water full score = %v", s)
	}
	ideal := PoliticalScoreSimple(biome.Plains, 20, 0.5)
	if math.Abs(ideal-1) > 1e-9 {
		t.Errorf("ideal plains = %v, want 1", ideal)
	}
	harsh := PoliticalScoreSimple(biome.Sahara, 90, 0.05)
	if harsh >= ideal {
		t.Errorf("sahara %v should score below plains %v", harsh, ideal)
	}
	full := PoliticalScore(biome.Plains, 20, 0.5, 0.1, 0, 1, 1)
	if math.Abs(full-1) > 1e-9 {
		t.Errorf("perfect full score = %v, want 1", full)
	}
}

func TestTerrainDifficulty(t *testing.T) {
	if got := TerrainDifficulty(biome.Plains); got != "Easy" {
		t.Errorf("plains = %q", got)
	}
	if got := TerrainDifficulty(biome.Mountain); got != "Very Difficult" {
		t.Errorf("mountain = %q", got)
	}
	if got := TerrainDifficulty(biome.Sea); got != "Impassable" {
		t.Errorf("sea = %q", got)
	}
}
