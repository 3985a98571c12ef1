package biome

import (
	"math"
	"testing"
)

func TestWaterBiomes(t *testing.T) {
	for _, b := range All() {
		want := b == Sea || b == Ice
		if got := b.IsWater(); got != want {
			t.Errorf("%v.IsWater() = %v, want %v", b, got, want)
		}
		if want && !math.IsInf(b.BaseTradeCost(), 1) {
			t.Errorf("%v: trade cost should be infinite", b)
		}
		if want && b.InfluenceDecay() != 0 {
			t.Errorf("%v: water should block influence", b)
		}
	}
}

func TestTradeCostOrdering(t *testing.T) {
	if !(Plains.BaseTradeCost() < Forest.BaseTradeCost() && Forest.BaseTradeCost() < Mountain.BaseTradeCost()) {
		t.Errorf("expected plains < forest < mountain, got %v %v %v",
			Plains.BaseTradeCost(), Forest.BaseTradeCost(), Mountain.BaseTradeCost())
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, b := range All() {
		got, err := Parse(b.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", b.String(), err)
		}
		if got != b {
			t.Errorf("Parse(%q) = %v", b.String(), got)
		}
	}
	if _, err := Parse("Swamp"); err == nil {
		t.Error("expected error for unknown biome")
	}
}

func TestMountainBiasIncreases(t *testing.T) {
	bias := Iron.Bias()
	ctx := DefaultResourceContext()
	prev := math.Inf(-1)
	for c := -0.5; c <= 0.5+1e-9; c += 0.05 {
		ctx.Continentalness = c
		m := bias.Multiplier(ctx)
		if m <= prev {
			t.Fatalf("multiplier not increasing at c=%.2f: %v <= %v", c, m, prev)
		}
		prev = m
	}
}

func TestBiasMultiplierRange(t *testing.T) {
	for _, r := range AllResources() {
		bias := r.Bias()
		for _, b := range All() {
			ctx := ResourceContext{Continentalness: 0.3, TectonicDist: 0.2, WaterDist: 2, Biome: b}
			m := bias.Multiplier(ctx)
			if m < 1-bias.Weight-1e-9 || m > 1+1e-9 {
				t.Errorf("%v on %v: multiplier %v out of [%v, 1]", r, b, m, 1-bias.Weight)
			}
		}
	}
}

func TestBiomeBias(t *testing.T) {
	bias := Timber.Bias()
	ctx := DefaultResourceContext()
	ctx.Biome = Forest
	if got := bias.Multiplier(ctx); got != 1 {
		t.Errorf("timber in forest = %v, want 1", got)
	}
	ctx.Biome = Desert
	if got := bias.Multiplier(ctx); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("timber in desert = %v, want 0.1", got)
	}
}

func TestSeedOffsetsDistinct(t *testing.T) {
	seen := make(map[int64]ResourceType)
	for _, r := range AllResources() {
		if o, ok := seen[r.SeedOffset()]; ok {
			t.Errorf("%v and %v share seed offset", r, o)
		}
		seen[r.SeedOffset()] = r
	}
	if Iron.SeedOffset() != 1000 || WildGame.SeedOffset() != 12000 {
		t.Errorf("unexpected offsets %d %d", Iron.SeedOffset(), WildGame.SeedOffset())
	}
}
