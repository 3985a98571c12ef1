package randlebrot

import (
	"fmt"

	"github.com/rjh-mopjones/randlebrot/biome"
)

// CityTier is the population class of a settlement.
type CityTier int

// The different settlement tiers.
const (
	CityTierCapital CityTier = iota
	CityTierTown
	CityTierVillage
)

// String returns the string representation of the tier.
func (t CityTier) String() string {
	switch t {
	case CityTierCapital:
		return "Capital"
	case CityTierTown:
		return "Town"
	case CityTierVillage:
		return "Village"
	default:
		return "Unknown"
	}
}

func (t CityTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *CityTier) UnmarshalText(text []byte) error {
	for _, v := range []CityTier{CityTierCapital, CityTierTown, CityTierVillage} {
		if v.String() == string(text) {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("unknown city tier %q", text)
}

// PopulationRange returns the minimum and maximum population of the tier.
func (t CityTier) PopulationRange() (int, int) {
	switch t {
	case CityTierCapital:
		return 50000, 500000
	case CityTierTown:
		return 5000, 50000
	default:
		return 100, 5000
	}
}

// Influence returns the territorial influence a settlement of this tier
// starts with.
func (t CityTier) Influence() float64 {
	switch t {
	case CityTierCapital:
		return 1.0
	case CityTierTown:
		return 0.8
	default:
		return 0.5
	}
}

// City is a settlement.
type City struct {
	ID         uint32      `yaml:"id"`
	Name       string      `yaml:"name"`
	Position   Point       `yaml:"position"`
	Tier       CityTier    `yaml:"tier"`
	Population int         `yaml:"population"`
	Industries []string    `yaml:"industries,omitempty"`
	Culture    CultureType `yaml:"culture"`
	Biome      biome.Biome `yaml:"biome"`
	IsAuthored bool        `yaml:"is_authored"` // capitals are designed by hand
}

// NewCity returns a new city with the population at the middle of the
// tier's range.
func NewCity(id uint32, name string, pos Point, tier CityTier) *City {
	lo, hi := tier.PopulationRange()
	return &City{
		ID:         id,
		Name:       name,
		Position:   pos,
		Tier:       tier,
		Population: (lo + hi) / 2,
		IsAuthored: tier == CityTierCapital,
	}
}

// String returns a short description of the city.
func (c *City) String() string {
	return fmt.Sprintf("%s (%s, %d)", c.Name, c.Tier, c.Population)
}

// cell returns the map cell of the city.
func (c *City) cell() (int, int) {
	return int(c.Position.X), int(c.Position.Y)
}
