package randlebrot

import (
	"strings"
	"testing"

	"github.com/rjh-mopjones/randlebrot/biome"
)

func TestJoinWords(t *testing.T) {
	testCases := []struct {
		words []string
		want  string
	}{
		{nil, ""},
		{[]string{"fishing"}, "fishing"},
		{[]string{"fishing", "salt works"}, "fishing and salt works"},
		{[]string{"a", "b", "c"}, "a, b and c"},
	}
	for _, tc := range testCases {
		if got := joinWords(tc.words); got != tc.want {
			t.Errorf("joinWords(%v) = %q, want %q", tc.words, got, tc.want)
		}
	}
}

func TestCityFlavorText(t *testing.T) {
	bm := newTestMap(40, 20, func(x, y int) biome.Biome {
		if x < 5 {
			return biome.Sea
		}
		return biome.Plains
	})
	port := NewCity(1, "Seaview", Point{5, 10}, CityTierCapital)
	port.Culture = CultureTypeTideWalker
	port.Biome = biome.Plains
	port.Industries = []string{"farming", "weaving"}
	f := NewFaction(1, "Coastal League", CultureTypeTideWalker)
	f.SetCapital(port.ID)

	text := CityFlavorText(bm, []*Faction{f}, port)
	for _, want := range []string{
		"Seaview is a sprawling city on the coast.",
		"Tide Walker people and the seat of the Coastal League.",
		"live from farming and weaving.",
		"covered by grassland",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
	if text != CityFlavorText(bm, []*Faction{f}, port) {
		t.Errorf("flavor text not deterministic")
	}

	inland := NewCity(2, "Middleton", Point{30, 10}, CityTierVillage)
	text = CityFlavorText(bm, nil, inland)
	if !strings.HasPrefix(text, "Middleton is a large village.") {
		t.Errorf("unexpected text:\n%s", text)
	}
}

func TestCivStats(t *testing.T) {
	w := NewWorldDefinition()
	NewGenerator(1, nil).Generate(twoCultureMap(), w)
	s := GetCivStats(w)
	if s.Settlements != len(w.Cities) || s.TradeRoutes != len(w.TradeRoutes) {
		t.Errorf("unexpected totals %+v", s)
	}
	if s.Tiers[CityTierCapital] != len(w.Factions) {
		t.Errorf("got %d capitals for %d factions", s.Tiers[CityTierCapital], len(w.Factions))
	}
	var sum, claimed int
	for _, n := range s.Roads {
		sum += n
	}
	if sum != len(w.Roads) || s.RoadLength <= 0 {
		t.Errorf("road stats %v %v", s.Roads, s.RoadLength)
	}
	for _, f := range s.Factions {
		claimed += f.Territory
		if f.Population <= 0 {
			t.Errorf("%s has no population", f.Name)
		}
	}
	if claimed != s.TerritoryClaimed || s.TerritoryShare <= 0 || s.TerritoryShare > 1 {
		t.Errorf("territory stats %d %d %v", claimed, s.TerritoryClaimed, s.TerritoryShare)
	}
}
