package randlebrot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rjh-mopjones/randlebrot/biome"
)

// CultureType is one of the fixed culture archetypes.
type CultureType int

// The culture archetypes.
const (
	CultureTypeTwilightDweller CultureType = iota
	CultureTypeFrostKin
	CultureTypeSunForged
	CultureTypeTideWalker
	CultureTypeStoneBorn
	numCultureTypes
)

// CultureTypes returns all archetypes in their canonical order.
func CultureTypes() []CultureType {
	res := make([]CultureType, 0, numCultureTypes)
	for c := CultureTypeTwilightDweller; c < numCultureTypes; c++ {
		res = append(res, c)
	}
	return res
}

// String returns the string representation of a given culture type.
func (c CultureType) String() string {
	switch c {
	case CultureTypeTwilightDweller:
		return "Twilight Dweller"
	case CultureTypeFrostKin:
		return "Frost Kin"
	case CultureTypeSunForged:
		return "Sun Forged"
	case CultureTypeTideWalker:
		return "Tide Walker"
	case CultureTypeStoneBorn:
		return "Stone Born"
	default:
		return "Unknown"
	}
}

func (c CultureType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CultureType) UnmarshalText(text []byte) error {
	for _, t := range CultureTypes() {
		if t.String() == string(text) {
			*c = t
			return nil
		}
	}
	return fmt.Errorf("unknown culture type %q", text)
}

// FactionName returns the name of the faction formed by the culture.
func (c CultureType) FactionName() string {
	switch c {
	case CultureTypeTwilightDweller:
		return "Twilight Confederacy"
	case CultureTypeFrostKin:
		return "Northern Holds"
	case CultureTypeSunForged:
		return "Sunward Tribes"
	case CultureTypeTideWalker:
		return "Coastal League"
	case CultureTypeStoneBorn:
		return "Mountain Kingdoms"
	default:
		return "Free Folk"
	}
}

// Color returns the map color of the culture and its faction.
func (c CultureType) Color() color.RGBA {
	switch c {
	case CultureTypeTwilightDweller:
		return color.RGBA{100, 180, 100, 200}
	case CultureTypeFrostKin:
		return color.RGBA{150, 200, 255, 200}
	case CultureTypeSunForged:
		return color.RGBA{255, 180, 80, 200}
	case CultureTypeTideWalker:
		return color.RGBA{80, 150, 200, 200}
	case CultureTypeStoneBorn:
		return color.RGBA{160, 140, 120, 200}
	default:
		return color.RGBA{128, 128, 128, 200}
	}
}

// Range is a closed interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// score returns 1 within the range and falls off linearly to 0 at
// 'falloff' outside of it.
func (r Range) score(v, falloff float64) float64 {
	switch {
	case v < r.Min:
		return math.Max(0, 1-(r.Min-v)/falloff)
	case v > r.Max:
		return math.Max(0, 1-(v-r.Max)/falloff)
	}
	return 1
}

// SettlementTraits describe how a culture settles the land. All values
// except Spacing are in [0, 1]; Spacing is the preferred distance between
// settlements in cells.
type SettlementTraits struct {
	Density    float64 `yaml:"density"`
	Spacing    float64 `yaml:"spacing"`
	Expansion  float64 `yaml:"expansion"`
	TradeFocus float64 `yaml:"trade_focus"`
	Defensive  float64 `yaml:"defensive"`
}

// Culture is an archetype with its environmental preferences.
type Culture struct {
	Type             CultureType             `yaml:"type"`
	Name             string                  `yaml:"name"`
	BiomePreferences map[biome.Biome]float64 `yaml:"biome_preferences"` // -1 (hostile) to 1 (ideal)
	TempRange        Range                   `yaml:"temp_range"`
	ContRange        Range                   `yaml:"cont_range"`
	Traits           SettlementTraits        `yaml:"traits"`
	Color            color.RGBA              `yaml:"color"`
}

func newCulture(t CultureType, prefs map[biome.Biome]float64, temp, cont Range, traits SettlementTraits) *Culture {
	return &Culture{
		Type:             t,
		Name:             t.FactionName(),
		BiomePreferences: prefs,
		TempRange:        temp,
		ContRange:        cont,
		Traits:           traits,
		Color:            t.Color(),
	}
}

// NewCulture returns the default culture of the given archetype.
func NewCulture(t CultureType) *Culture {
	switch t {
	case CultureTypeTwilightDweller:
		return newCulture(t, map[biome.Biome]float64{
			biome.Sea: -1, biome.Ice: -1, biome.Beach: 0.5, biome.Snow: 0.1,
			biome.Plains: 1, biome.Forest: 0.8, biome.Desert: -0.2, biome.Sahara: -0.5,
			biome.Mountain: 0.3, biome.Plateau: 0.4,
		}, Range{10, 40}, Range{0, 0.25}, SettlementTraits{0.9, 60, 0.6, 0.8, 0.4})
	case CultureTypeFrostKin:
		return newCulture(t, map[biome.Biome]float64{
			biome.Sea: -1, biome.Ice: 0.2, biome.Beach: 0.1, biome.Snow: 1,
			biome.Plains: 0.3, biome.Forest: 0.6, biome.Desert: -0.8, biome.Sahara: -1,
			biome.Mountain: 0.5, biome.Plateau: 0.4,
		}, Range{-40, 10}, Range{0.05, 0.35}, SettlementTraits{0.7, 100, 0.3, 0.4, 0.7})
	case CultureTypeSunForged:
		return newCulture(t, map[biome.Biome]float64{
			biome.Sea: -1, biome.Ice: -1, biome.Beach: 0.3, biome.Snow: -1,
			biome.Plains: 0.4, biome.Forest: -0.2, biome.Desert: 0.8, biome.Sahara: 1,
			biome.Mountain: 0.2, biome.Plateau: 0.7,
		}, Range{40, 100}, Range{0, 0.3}, SettlementTraits{0.5, 90, 0.4, 0.6, 0.3})
	case CultureTypeTideWalker:
		return newCulture(t, map[biome.Biome]float64{
			biome.Sea: 0.3, biome.Ice: -0.5, biome.Beach: 1, biome.Snow: 0.1,
			biome.Plains: 0.5, biome.Forest: 0.3, biome.Desert: 0.1, biome.Sahara: -0.3,
			biome.Mountain: -0.2, biome.Plateau: 0,
		}, Range{5, 50}, Range{-0.02, 0.1}, SettlementTraits{0.8, 50, 0.5, 1, 0.4})
	case CultureTypeStoneBorn:
		return newCulture(t, map[biome.Biome]float64{
			biome.Sea: -1, biome.Ice: -0.5, biome.Beach: -0.3, biome.Snow: 0.5,
			biome.Plains: 0.1, biome.Forest: 0.3, biome.Desert: 0, biome.Sahara: -0.2,
			biome.Mountain: 1, biome.Plateau: 0.9,
		}, Range{-20, 50}, Range{0.2, 0.5}, SettlementTraits{0.8, 80, 0.4, 0.5, 1})
	}
	return newCulture(t, map[biome.Biome]float64{}, Range{0, 30}, Range{0, 0.3}, SettlementTraits{0.7, 80, 0.5, 0.5, 0.5})
}

// DefaultCultures returns one culture per archetype.
func DefaultCultures() []*Culture {
	var res []*Culture
	for _, t := range CultureTypes() {
		res = append(res, NewCulture(t))
	}
	return res
}

// Suitability returns how well a cell fits the culture (0-1). The biome
// preference weighs 40%, the temperature and continentalness ranges 30%
// each.
func (c *Culture) Suitability(b biome.Biome, temp, cont float64) float64 {
	biomeScore := (c.BiomePreferences[b] + 1) / 2
	tempScore := c.TempRange.score(temp, 50)
	contScore := c.ContRange.score(cont, 0.3)
	return 0.4*biomeScore + 0.3*tempScore + 0.3*contScore
}

// FactionName returns the name of the faction formed by the culture.
func (c *Culture) FactionName() string {
	return c.Type.FactionName()
}

// BestCulture returns the culture that fits the cell best and its score.
// Ties go to the earlier culture.
func BestCulture(cultures []*Culture, b biome.Biome, temp, cont float64) (*Culture, float64) {
	var best *Culture
	bestScore := math.Inf(-1)
	for _, c := range cultures {
		if s := c.Suitability(b, temp, cont); s > bestScore {
			best, bestScore = c, s
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestScore
}
