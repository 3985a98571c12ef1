package randlebrot

import (
	"image"
	"math"
	"testing"

	"github.com/rjh-mopjones/randlebrot/biome"
)

func TestRoadTypeFor(t *testing.T) {
	testCases := []struct {
		a, b CityTier
		want RoadType
	}{
		{CityTierCapital, CityTierCapital, RoadTypeImperial},
		{CityTierCapital, CityTierTown, RoadTypeProvincial},
		{CityTierTown, CityTierTown, RoadTypeProvincial},
		{CityTierCapital, CityTierVillage, RoadTypeTrail},
		{CityTierVillage, CityTierTown, RoadTypeTrail},
		{CityTierVillage, CityTierVillage, RoadTypeTrail},
	}
	for _, tc := range testCases {
		if got := RoadTypeFor(tc.a, tc.b); got != tc.want {
			t.Errorf("RoadTypeFor(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSimplifyPath(t *testing.T) {
	testCases := []struct {
		name string
		path []image.Point
		want []Point
	}{
		{"empty", nil, []Point{}},
		{"single", []image.Point{{3, 4}}, []Point{{3, 4}}},
		{"straight", []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, []Point{{0, 0}, {3, 0}}},
		{"corner", []image.Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, []Point{{0, 0}, {2, 0}, {2, 2}}},
		{"diagonal", []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 2}}, []Point{{0, 0}, {2, 2}, {3, 2}}},
	}
	for _, tc := range testCases {
		got := simplifyPath(tc.path)
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
				break
			}
		}
	}
}

func TestRoadLength(t *testing.T) {
	r := &Road{Waypoints: []Point{{0, 0}, {3, 4}, {3, 10}}, Connects: [2]uint32{1, 2}}
	if got := r.Length(); math.Abs(got-11) > 1e-9 {
		t.Errorf("Length() = %v, want 11", got)
	}
	if !r.ConnectsSettlement(1) || !r.ConnectsSettlement(2) || r.ConnectsSettlement(3) {
		t.Errorf("ConnectsSettlement mismatch for %v", r.Connects)
	}
	if (&Road{}).Length() != 0 {
		t.Errorf("empty road should have no length")
	}
}

// wallMap has a sea wall at x=20 with a gap at the bottom rows and a
// separate island in the east.
func wallMap() *roadBuilder {
	bm := newTestMap(60, 40, func(x, y int) biome.Biome {
		switch {
		case x == 20 && y < 35:
			return biome.Sea
		case x >= 40 && x < 45:
			return biome.Sea
		}
		return biome.Plains
	})
	return newRoadBuilder(bm)
}

func TestFindPathAvoidsWater(t *testing.T) {
	rb := wallMap()
	path := rb.findPath(image.Pt(10, 5), image.Pt(30, 5))
	if len(path) < 3 {
		t.Fatalf("expected a detour, got %v", path)
	}
	if path[0] != (Point{10, 5}) || path[len(path)-1] != (Point{30, 5}) {
		t.Errorf("path should run from start to goal, got %v", path)
	}
	// The detour must pass through the gap.
	var lowest float64
	for _, p := range path {
		if b, _ := rb.bm.BiomeAt(int(p.X), int(p.Y)); b.IsWater() {
			t.Errorf("waypoint %v on water", p)
		}
		lowest = math.Max(lowest, p.Y)
	}
	if lowest < 35 {
		t.Errorf("path does not go through the gap: %v", path)
	}
}

func TestFindPathFallback(t *testing.T) {
	rb := wallMap()
	testCases := []struct {
		name     string
		from, to image.Point
	}{
		{"other island", image.Pt(10, 5), image.Pt(50, 5)},
		{"from water", image.Pt(20, 5), image.Pt(30, 5)},
		{"out of bounds", image.Pt(-5, 5), image.Pt(30, 5)},
	}
	for _, tc := range testCases {
		got := rb.findPath(tc.from, tc.to)
		want := []Point{pointOf(tc.from), pointOf(tc.to)}
		if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("%s: got %v, want straight line %v", tc.name, got, want)
		}
	}
	if rb.pathCalls != 0 {
		t.Errorf("hopeless searches should not run A*, got %d calls", rb.pathCalls)
	}
}

func TestGenerateRoadsSpanningTree(t *testing.T) {
	bm := newTestMap(100, 50, func(x, y int) biome.Biome { return biome.Plains })
	cities := []*City{
		NewCity(1, "A", Point{10, 10}, CityTierCapital),
		NewCity(2, "B", Point{80, 10}, CityTierCapital),
		NewCity(3, "C", Point{20, 40}, CityTierVillage),
		NewCity(4, "D", Point{70, 40}, CityTierTown),
	}
	roads := generateRoads(bm, cities)
	if len(roads) != len(cities)-1 {
		t.Fatalf("got %d roads, want %d", len(roads), len(cities)-1)
	}

	// Union find over the roads must join everything.
	parent := map[uint32]uint32{1: 1, 2: 2, 3: 3, 4: 4}
	var find func(uint32) uint32
	find = func(v uint32) uint32 {
		if parent[v] != v {
			parent[v] = find(parent[v])
		}
		return parent[v]
	}
	for _, r := range roads {
		a, b := find(r.Connects[0]), find(r.Connects[1])
		if a == b {
			t.Errorf("road %d closes a cycle", r.ID)
		}
		parent[a] = b
		from, to := cities[r.Connects[0]-1], cities[r.Connects[1]-1]
		if r.Type != RoadTypeFor(from.Tier, to.Tier) {
			t.Errorf("road %d has type %v", r.ID, r.Type)
		}
	}
	for id := range parent {
		if find(id) != find(1) {
			t.Errorf("city %d not connected", id)
		}
	}

	if got := generateRoads(bm, cities[:1]); got != nil {
		t.Errorf("single settlement should have no roads")
	}
}
