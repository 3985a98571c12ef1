package randlebrot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/rjh-mopjones/randlebrot/geo"
	"github.com/rjh-mopjones/randlebrot/various"
)

// Point is a position in map cells.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Dist returns the euclidean distance to the other point.
func (p Point) Dist(o Point) float64 {
	return various.Dist2([2]float64{p.X, p.Y}, [2]float64{o.X, o.Y})
}

func (p Point) vec() [2]float64 {
	return [2]float64{p.X, p.Y}
}

// Polygon is a closed outline given by its vertices.
type Polygon struct {
	Vertices []Point `yaml:"vertices"`
}

// IsClosed returns true if the polygon has an area (at least 3 vertices).
func (p Polygon) IsClosed() bool {
	return len(p.Vertices) >= 3
}

// Contains returns true if the point lies within the polygon.
func (p Polygon) Contains(pt Point) bool {
	if !p.IsClosed() {
		return false
	}
	poly := make([][2]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		poly[i] = v.vec()
	}
	return various.IsPointInPolygon(poly, pt.vec())
}

// Region is a hand drawn area of the world, like a country or a zone
// that forces a biome.
type Region struct {
	ID            uint32     `yaml:"id"`
	Name          string     `yaml:"name"`
	Bounds        Polygon    `yaml:"bounds"`
	BiomeOverride string     `yaml:"biome_override,omitempty"` // forced biome name, empty for none
	Faction       string     `yaml:"faction,omitempty"`
	Color         color.RGBA `yaml:"color"`
}

// NewRegion returns a new region drawn in semi-transparent blue.
func NewRegion(id uint32, name string, bounds Polygon) *Region {
	return &Region{
		ID:     id,
		Name:   name,
		Bounds: bounds,
		Color:  color.RGBA{100, 100, 200, 128},
	}
}

// LandmarkKind is the type of a landmark.
type LandmarkKind int

// The different kinds of landmarks.
const (
	LandmarkRuin LandmarkKind = iota
	LandmarkTemple
	LandmarkTower
	LandmarkCave
	LandmarkBridge
	LandmarkMonument
	LandmarkMine
	LandmarkPort
	LandmarkOther
)

// LandmarkKinds returns all landmark kinds.
func LandmarkKinds() []LandmarkKind {
	return []LandmarkKind{
		LandmarkRuin, LandmarkTemple, LandmarkTower, LandmarkCave, LandmarkBridge,
		LandmarkMonument, LandmarkMine, LandmarkPort, LandmarkOther,
	}
}

func (k LandmarkKind) String() string {
	switch k {
	case LandmarkRuin:
		return "Ruin"
	case LandmarkTemple:
		return "Temple"
	case LandmarkTower:
		return "Tower"
	case LandmarkCave:
		return "Cave"
	case LandmarkBridge:
		return "Bridge"
	case LandmarkMonument:
		return "Monument"
	case LandmarkMine:
		return "Mine"
	case LandmarkPort:
		return "Port"
	case LandmarkOther:
		return "Other"
	}
	return "Unknown"
}

func (k LandmarkKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *LandmarkKind) UnmarshalText(text []byte) error {
	for _, v := range LandmarkKinds() {
		if strings.EqualFold(v.String(), string(text)) {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("unknown landmark kind %q", text)
}

// Landmark is a point of interest.
type Landmark struct {
	ID          uint32       `yaml:"id"`
	Name        string       `yaml:"name"`
	Position    Point        `yaml:"position"`
	Kind        LandmarkKind `yaml:"kind"`
	Description string       `yaml:"description,omitempty"`
}

// WorldDefinition is everything that describes a world: the parameters
// the terrain is generated from and the civilization placed on it.
type WorldDefinition struct {
	Name          string          `yaml:"name"`
	Seed          int64           `yaml:"seed"`
	Width         int             `yaml:"width"`
	Height        int             `yaml:"height"`
	SeaLevel      float64         `yaml:"sea_level"`
	TerminatorX   float64         `yaml:"terminator_x"`   // center of the twilight zone
	TwilightWidth float64         `yaml:"twilight_width"` // width of the habitable band
	NoiseParams   geo.NoiseParams `yaml:"noise_params"`
	Regions       []*Region       `yaml:"regions"`
	Cities        []*City         `yaml:"cities"`
	Landmarks     []*Landmark     `yaml:"landmarks"`
	Cultures      []*Culture      `yaml:"cultures"`
	Factions      []*Faction      `yaml:"factions"`
	Roads         []*Road         `yaml:"roads"`
	TradeRoutes   []*TradeRoute   `yaml:"trade_routes"`

	// Territory is regenerated rather than stored.
	Territory *TerritoryMap `yaml:"-"`
	IDs       IDGenerator   `yaml:"-"`
}

// NewWorldDefinition returns an empty world with default parameters.
func NewWorldDefinition() *WorldDefinition {
	return &WorldDefinition{
		Name:          "New World",
		Seed:          42,
		Width:         1024,
		Height:        512,
		SeaLevel:      geo.SeaLevel,
		TerminatorX:   512,
		TwilightWidth: 200,
		NoiseParams:   geo.NewNoiseParams(),
	}
}

// MapConfig returns the terrain configuration of the world.
func (m *WorldDefinition) MapConfig() *geo.MapConfig {
	cfg := geo.NewMapConfig()
	cfg.Width = m.Width
	cfg.Height = m.Height
	cfg.SeaLevel = m.SeaLevel
	cfg.Noise = m.NoiseParams
	return cfg
}

// InTwilight returns true if the column lies within the twilight band.
func (m *WorldDefinition) InTwilight(x float64) bool {
	return math.Abs(x-m.TerminatorX) <= m.TwilightWidth/2
}

// CityByID returns the city with the given id or nil.
func (m *WorldDefinition) CityByID(id uint32) *City {
	for _, c := range m.Cities {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FactionByID returns the faction with the given id or nil.
func (m *WorldDefinition) FactionByID(id uint32) *Faction {
	for _, f := range m.Factions {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// FactionOfCity returns the faction the city belongs to or nil.
func (m *WorldDefinition) FactionOfCity(cityID uint32) *Faction {
	return FactionOfCity(m.Factions, cityID)
}

// RegionsAt returns all regions containing the point.
func (m *WorldDefinition) RegionsAt(p Point) []*Region {
	var res []*Region
	for _, r := range m.Regions {
		if r.Bounds.Contains(p) {
			res = append(res, r)
		}
	}
	return res
}

// IDGenerator hands out the next free id per object type.
type IDGenerator struct {
	nextRegion     uint32
	nextCity       uint32
	nextLandmark   uint32
	nextFaction    uint32
	nextRoad       uint32
	nextTradeRoute uint32
}

func nextID(v *uint32) uint32 {
	*v++
	return *v
}

// NextRegionID returns a new region id.
func (m *IDGenerator) NextRegionID() uint32 { return nextID(&m.nextRegion) }

// NextCityID returns a new city id.
func (m *IDGenerator) NextCityID() uint32 { return nextID(&m.nextCity) }

// NextLandmarkID returns a new landmark id.
func (m *IDGenerator) NextLandmarkID() uint32 { return nextID(&m.nextLandmark) }

// NextFactionID returns a new faction id.
func (m *IDGenerator) NextFactionID() uint32 { return nextID(&m.nextFaction) }

// NextRoadID returns a new road id.
func (m *IDGenerator) NextRoadID() uint32 { return nextID(&m.nextRoad) }

// NextTradeRouteID returns a new trade route id.
func (m *IDGenerator) NextTradeRouteID() uint32 { return nextID(&m.nextTradeRoute) }

// SyncWith moves every counter past the highest id used in the world, so
// that objects added later never collide with generated or loaded ones.
func (m *IDGenerator) SyncWith(w *WorldDefinition) {
	*m = IDGenerator{}
	for _, r := range w.Regions {
		m.nextRegion = max(m.nextRegion, r.ID)
	}
	for _, c := range w.Cities {
		m.nextCity = max(m.nextCity, c.ID)
	}
	for _, l := range w.Landmarks {
		m.nextLandmark = max(m.nextLandmark, l.ID)
	}
	for _, f := range w.Factions {
		m.nextFaction = max(m.nextFaction, f.ID)
	}
	for _, r := range w.Roads {
		m.nextRoad = max(m.nextRoad, r.ID)
	}
	for _, t := range w.TradeRoutes {
		m.nextTradeRoute = max(m.nextTradeRoute, t.ID)
	}
}
