package randlebrot

import (
	"image/color"
	"testing"

	"github.com/rjh-mopjones/randlebrot/biome"
)

func TestTerritoryNeighbors(t *testing.T) {
	m := NewTerritoryMap(5, 4)
	testCases := []struct {
		x, y int
		want int
	}{
		{0, 0, 2},
		{4, 3, 2},
		{2, 0, 3},
		{0, 2, 3},
		{2, 2, 4},
	}
	for _, tc := range testCases {
		if got := len(m.Neighbors(tc.x, tc.y)); got != tc.want {
			t.Errorf("Neighbors(%d, %d): got %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestTerritoryAccessors(t *testing.T) {
	m := NewTerritoryMap(4, 4)
	m.Set(1, 2, 3, 0.5)
	m.Set(9, 9, 3, 0.5)
	if m.Owner(1, 2) != 3 || m.InfluenceAt(1, 2) != 0.5 || !m.IsClaimed(1, 2) {
		t.Errorf("cell (1, 2) not claimed by 3")
	}
	if m.Owner(-1, 0) != 0 || m.InfluenceAt(9, 9) != 0 {
		t.Errorf("out of bounds cells should be unclaimed")
	}
	if m.TotalClaimedArea() != 1 || m.CountByFaction()[3] != 1 {
		t.Errorf("unexpected counts %v", m.CountByFaction())
	}
}

func TestTerritoryToImage(t *testing.T) {
	m := NewTerritoryMap(3, 1)
	m.Set(0, 0, 1, 0.5)
	m.Set(1, 0, 9, 1)
	img := m.ToImage(map[uint32]color.RGBA{1: {200, 100, 50, 255}})
	testCases := []struct {
		x    int
		want color.NRGBA
	}{
		{0, color.NRGBA{200, 100, 50, 127}},
		{1, color.NRGBA{128, 128, 128, 128}},
		{2, color.NRGBA{}},
	}
	for _, tc := range testCases {
		if got := img.NRGBAAt(tc.x, 0); got != tc.want {
			t.Errorf("pixel %d: got %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestFactionColors(t *testing.T) {
	a := NewFaction(1, "A", CultureTypeFrostKin)
	b := NewFaction(2, "B", CultureTypeFrostKin)
	b.Color = color.RGBA{}
	colors := FactionColors([]*Faction{a, b})
	if colors[1] != CultureTypeFrostKin.Color() {
		t.Errorf("faction color not kept: %v", colors[1])
	}
	if colors[2].A == 0 {
		t.Errorf("faction without color got none")
	}
}

func TestTerritoryWaterBlocks(t *testing.T) {
	bm := newTestMap(60, 20, func(x, y int) biome.Biome {
		if x == 30 {
			return biome.Sea
		}
		return biome.Plains
	})
	capital := NewCity(1, "A", Point{10, 10}, CityTierCapital)
	f := NewFaction(1, "A", CultureTypeTwilightDweller)
	f.SetCapital(capital.ID)

	tm := generateTerritory(bm, []*City{capital}, []*Faction{f}, 0.1)
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			switch {
			case x < 30 && tm.Owner(x, y) != 1:
				t.Fatalf("(%d, %d) should be claimed", x, y)
			case x >= 30 && tm.IsClaimed(x, y):
				t.Fatalf("(%d, %d) across the water is claimed", x, y)
			}
		}
	}
	if got := tm.InfluenceAt(10, 10); got != 1 {
		t.Errorf("capital influence %v, want 1", got)
	}
	if tm.InfluenceAt(11, 10) >= 1 || tm.InfluenceAt(11, 10) <= tm.InfluenceAt(12, 10) {
		t.Errorf("influence should decay with distance")
	}
}

func TestTerritoryContested(t *testing.T) {
	bm := newTestMap(31, 11, func(x, y int) biome.Biome { return biome.Plains })
	a := NewCity(1, "A", Point{10, 5}, CityTierCapital)
	b := NewCity(2, "B", Point{20, 5}, CityTierCapital)
	fa := NewFaction(1, "A", CultureTypeTwilightDweller)
	fa.SetCapital(a.ID)
	fb := NewFaction(2, "B", CultureTypeFrostKin)
	fb.SetCapital(b.ID)
	cities, factions := []*City{a, b}, []*Faction{fa, fb}

	tm := generateTerritory(bm, cities, factions, 0.1)
	if tm.Owner(5, 5) != 1 || tm.Owner(25, 5) != 2 {
		t.Errorf("each faction should hold its side")
	}
	if got := tm.Owner(15, 5); got != 1 {
		t.Errorf("tied cell owned by %d, want the lower id", got)
	}

	again := generateTerritory(bm, cities, factions, 0.1)
	for i := range tm.Owners {
		if tm.Owners[i] != again.Owners[i] || tm.Influence[i] != again.Influence[i] {
			t.Fatalf("territory not deterministic at %d", i)
		}
	}
}
