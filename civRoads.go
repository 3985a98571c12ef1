package randlebrot

import (
	"fmt"
	"image"
	"image/color"
	"math"

	goastar "github.com/beefsack/go-astar"
	"github.com/rjh-mopjones/randlebrot/biome"
	"github.com/rjh-mopjones/randlebrot/geo"
	"github.com/rjh-mopjones/randlebrot/various"
)

// RoadType is the grade of a road.
type RoadType int

// The different road grades, highest first.
const (
	RoadTypeImperial RoadType = iota
	RoadTypeProvincial
	RoadTypeTrail
)

// String returns the string representation of the road type.
func (t RoadType) String() string {
	switch t {
	case RoadTypeImperial:
		return "Imperial"
	case RoadTypeProvincial:
		return "Provincial"
	case RoadTypeTrail:
		return "Trail"
	default:
		return "Unknown"
	}
}

func (t RoadType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *RoadType) UnmarshalText(text []byte) error {
	for _, v := range []RoadType{RoadTypeImperial, RoadTypeProvincial, RoadTypeTrail} {
		if v.String() == string(text) {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("unknown road type %q", text)
}

// Width returns the display width of the road.
func (t RoadType) Width() float64 {
	switch t {
	case RoadTypeImperial:
		return 3
	case RoadTypeProvincial:
		return 2
	default:
		return 1
	}
}

// Color returns the display color of the road.
func (t RoadType) Color() color.RGBA {
	switch t {
	case RoadTypeImperial:
		return color.RGBA{220, 180, 80, 255} // gold
	case RoadTypeProvincial:
		return color.RGBA{180, 180, 180, 255} // silver
	default:
		return color.RGBA{140, 110, 80, 255} // brown
	}
}

// RoadTypeFor returns the grade of a road between settlements of the given
// tiers.
func RoadTypeFor(a, b CityTier) RoadType {
	switch {
	case a == CityTierCapital && b == CityTierCapital:
		return RoadTypeImperial
	case (a == CityTierCapital || a == CityTierTown) && (b == CityTierCapital || b == CityTierTown):
		return RoadTypeProvincial
	}
	return RoadTypeTrail
}

// Road connects two settlements along a list of waypoints.
type Road struct {
	ID        uint32    `yaml:"id"`
	Waypoints []Point   `yaml:"waypoints"`
	Type      RoadType  `yaml:"type"`
	Connects  [2]uint32 `yaml:"connects"`
}

// Length returns the length of the polyline through all waypoints.
func (r *Road) Length() float64 {
	var l float64
	for i := 1; i < len(r.Waypoints); i++ {
		l += r.Waypoints[i-1].Dist(r.Waypoints[i])
	}
	return l
}

// ConnectsSettlement returns true if the road ends at the settlement.
func (r *Road) ConnectsSettlement(cityID uint32) bool {
	return r.Connects[0] == cityID || r.Connects[1] == cityID
}

// roadBuilder finds paths on the biome map. Tiles are cached so that
// go-astar can compare them by identity, and land masses are labeled so
// that hopeless searches are skipped.
type roadBuilder struct {
	bm        *geo.BiomeMap
	tiles     map[int]*roadTile
	landmass  []int // 0 for water
	minCost   float64
	pathCalls int
}

func newRoadBuilder(bm *geo.BiomeMap) *roadBuilder {
	rb := &roadBuilder{
		bm:      bm,
		tiles:   make(map[int]*roadTile),
		minCost: math.Inf(1),
	}
	for i, b := range bm.Biomes {
		if c := roadCost(b, bm.Erosion[i]); c < rb.minCost {
			rb.minCost = c
		}
	}
	if math.IsInf(rb.minCost, 1) {
		rb.minCost = 0
	}
	rb.landmass = labelLandmasses(bm)
	return rb
}

// roadCost returns the cost of a road step through a cell: the biome's
// movement cost, up to 20% cheaper on eroded terrain.
func roadCost(b biome.Biome, erosion float64) float64 {
	base := b.MovementCost()
	if math.IsInf(base, 1) {
		return base
	}
	return base * (1 - math.Min(math.Max(erosion, 0), 1)*0.2)
}

// labelLandmasses assigns every land cell the id of its 8-connected land
// mass, starting at 1.
func labelLandmasses(bm *geo.BiomeMap) []int {
	labels := make([]int, len(bm.Biomes))
	var next int
	var stack []int
	for start, b := range bm.Biomes {
		if b.IsWater() || labels[start] != 0 {
			continue
		}
		next++
		labels[start] = next
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := i%bm.Width, i/bm.Width
			for _, d := range neighbors8 {
				nx, ny := x+d.X, y+d.Y
				if !bm.InBounds(nx, ny) {
					continue
				}
				n := bm.Index(nx, ny)
				if labels[n] != 0 || bm.Biomes[n].IsWater() {
					continue
				}
				labels[n] = next
				stack = append(stack, n)
			}
		}
	}
	return labels
}

var neighbors8 = []image.Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (m *roadBuilder) getTile(x, y int) *roadTile {
	i := m.bm.Index(x, y)
	if t, ok := m.tiles[i]; ok {
		return t
	}
	t := &roadTile{
		b:    m,
		pos:  image.Point{x, y},
		cost: roadCost(m.bm.Biomes[i], m.bm.Erosion[i]),
	}
	m.tiles[i] = t
	return t
}

// findPath returns the simplified waypoints of the cheapest path between
// two cells. If there is none, the straight line is returned.
func (m *roadBuilder) findPath(from, to image.Point) []Point {
	direct := []Point{pointOf(from), pointOf(to)}
	if !m.bm.InBounds(from.X, from.Y) || !m.bm.InBounds(to.X, to.Y) {
		return direct
	}
	if from == to {
		return []Point{pointOf(from)}
	}
	la := m.landmass[m.bm.Index(from.X, from.Y)]
	lb := m.landmass[m.bm.Index(to.X, to.Y)]
	if la == 0 || la != lb {
		return direct
	}
	m.pathCalls++
	path, _, found := goastar.Path(m.getTile(from.X, from.Y), m.getTile(to.X, to.Y))
	if !found {
		return direct
	}

	// go-astar returns the path from the goal to the start.
	cells := make([]image.Point, len(path))
	for i, p := range path {
		cells[len(path)-1-i] = p.(*roadTile).pos
	}
	return simplifyPath(cells)
}

// roadTile is a cell of the biome map implementing goastar.Pather.
type roadTile struct {
	b    *roadBuilder
	pos  image.Point
	cost float64
}

// PathNeighbors returns the passable 8-connected neighbors.
func (n *roadTile) PathNeighbors() []goastar.Pather {
	nbs := make([]goastar.Pather, 0, 8)
	for _, d := range neighbors8 {
		x, y := n.pos.X+d.X, n.pos.Y+d.Y
		if !n.b.bm.InBounds(x, y) {
			continue
		}
		t := n.b.getTile(x, y)
		if math.IsInf(t.cost, 1) {
			continue
		}
		nbs = append(nbs, t)
	}
	return nbs
}

// PathNeighborCost returns the cost of entering the neighbor. Diagonal
// steps are √2 as expensive.
func (n *roadTile) PathNeighborCost(to goastar.Pather) float64 {
	t := to.(*roadTile)
	if t.pos.X != n.pos.X && t.pos.Y != n.pos.Y {
		return t.cost * math.Sqrt2
	}
	return t.cost
}

// PathEstimatedCost returns the octile distance scaled by the cheapest
// step cost, which never overestimates.
func (n *roadTile) PathEstimatedCost(to goastar.Pather) float64 {
	t := to.(*roadTile)
	dx := math.Abs(float64(t.pos.X - n.pos.X))
	dy := math.Abs(float64(t.pos.Y - n.pos.Y))
	return (math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)) * n.b.minCost
}

// simplifyPath reduces a cell path to the cells where its direction
// changes, plus both ends.
func simplifyPath(path []image.Point) []Point {
	if len(path) < 2 {
		res := make([]Point, 0, len(path))
		for _, p := range path {
			res = append(res, pointOf(p))
		}
		return res
	}
	res := []Point{pointOf(path[0])}
	prevDir := path[1].Sub(path[0])
	for i := 2; i < len(path); i++ {
		dir := path[i].Sub(path[i-1])
		if dir != prevDir {
			res = append(res, pointOf(path[i-1]))
			prevDir = dir
		}
	}
	return append(res, pointOf(path[len(path)-1]))
}

func pointOf(p image.Point) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// generateRoads connects all settlements with a minimum spanning tree
// (Prim's algorithm on straight-line distance) and pathfinds every edge.
func generateRoads(bm *geo.BiomeMap, cities []*City) []*Road {
	if len(cities) < 2 {
		return nil
	}
	byID := make(map[uint32]*City, len(cities))
	for _, c := range cities {
		byID[c.ID] = c
	}
	connected := make(map[uint32]bool, len(cities))

	var queue geo.EdgeQueue
	connect := func(c *City) {
		connected[c.ID] = true
		for _, o := range cities {
			if connected[o.ID] {
				continue
			}
			queue.Push(geo.Edge{
				From: c.ID,
				To:   o.ID,
				Cost: c.Position.Dist(o.Position),
			})
		}
	}
	connect(cities[0])

	rb := newRoadBuilder(bm)
	var roads []*Road
	for queue.Len() > 0 && len(connected) < len(cities) {
		e := queue.Pop()
		to := byID[e.To]
		if connected[to.ID] {
			continue
		}
		from := byID[e.From]
		fx, fy := from.cell()
		tx, ty := to.cell()
		roads = append(roads, &Road{
			ID:        uint32(len(roads) + 1),
			Waypoints: rb.findPath(image.Point{fx, fy}, image.Point{tx, ty}),
			Type:      RoadTypeFor(from.Tier, to.Tier),
			Connects:  [2]uint32{from.ID, to.ID},
		})
		connect(to)
	}
	various.Logf("Pathfound %d of %d roads", rb.pathCalls, len(roads))
	return roads
}
