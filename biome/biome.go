// Package biome holds the closed sets shared by the noise and map layers:
// the terrain classification and the natural resource types.
package biome

import (
	"fmt"
	"image/color"
	"math"
)

// Biome is the terrain/climate classification of a single cell.
type Biome uint8

// The different biomes, water first.
const (
	Sea Biome = iota
	Ice
	Beach
	Snow
	Plains
	Forest
	Desert
	Sahara
	Mountain
	Plateau
	numBiomes
)

// NumBiomes is the size of the biome set.
const NumBiomes = int(numBiomes)

// All returns all biomes in declaration order.
func All() []Biome {
	res := make([]Biome, 0, NumBiomes)
	for b := Sea; b < numBiomes; b++ {
		res = append(res, b)
	}
	return res
}

// String returns the string representation of the biome.
func (b Biome) String() string {
	switch b {
	case Sea:
		return "Sea"
	case Ice:
		return "Ice"
	case Beach:
		return "Beach"
	case Snow:
		return "Snow"
	case Plains:
		return "Plains"
	case Forest:
		return "Forest"
	case Desert:
		return "Desert"
	case Sahara:
		return "Sahara"
	case Mountain:
		return "Mountain"
	case Plateau:
		return "Plateau"
	}
	return "Unknown"
}

// Parse returns the biome with the given name.
func Parse(s string) (Biome, error) {
	for _, b := range All() {
		if b.String() == s {
			return b, nil
		}
	}
	return Sea, fmt.Errorf("unknown biome %q", s)
}

func (b Biome) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Biome) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// IsWater returns true for the biomes below sea level.
func (b Biome) IsWater() bool {
	return b == Sea || b == Ice
}

// Color returns the display color of the biome.
func (b Biome) Color() color.RGBA {
	switch b {
	case Sea:
		return color.RGBA{64, 191, 255, 255}
	case Ice:
		return color.RGBA{200, 230, 255, 255}
	case Beach:
		return color.RGBA{238, 214, 175, 255}
	case Snow:
		return color.RGBA{235, 240, 245, 255}
	case Plains:
		return color.RGBA{170, 190, 110, 255}
	case Forest:
		return color.RGBA{0, 128, 0, 255}
	case Desert:
		return color.RGBA{210, 180, 140, 255}
	case Sahara:
		return color.RGBA{235, 200, 120, 255}
	case Mountain:
		return color.RGBA{140, 130, 120, 255}
	case Plateau:
		return color.RGBA{180, 150, 120, 255}
	}
	return color.RGBA{255, 0, 255, 255}
}

// Fertility returns how well the biome supports agriculture (0-1).
func (b Biome) Fertility() float64 {
	switch b {
	case Plains:
		return 1.0
	case Forest:
		return 0.7
	case Beach:
		return 0.6
	case Plateau:
		return 0.3
	case Desert, Snow:
		return 0.2
	case Mountain:
		return 0.15
	case Sahara:
		return 0.1
	}
	return 0
}

// BaseTradeCost returns the cost of moving goods across the biome
// before erosion is taken into account. Water is impassable by land.
func (b Biome) BaseTradeCost() float64 {
	switch b {
	case Sea, Ice:
		return math.Inf(1)
	case Mountain:
		return 10.0
	case Plateau, Sahara:
		return 6.0
	case Snow:
		return 8.0
	case Desert:
		return 5.0
	case Forest:
		return 3.0
	case Beach:
		return 1.5
	}
	return 1.0
}

// MovementCost returns the cost of building and walking a road through
// the biome.
func (b Biome) MovementCost() float64 {
	switch b {
	case Sea, Ice:
		return math.Inf(1)
	case Mountain:
		return 8.0
	case Plateau:
		return 5.0
	case Snow:
		return 6.0
	case Desert, Sahara:
		return 4.0
	case Forest:
		return 3.0
	case Beach:
		return 1.5
	}
	return 1.0
}

// InfluenceDecay returns the factor by which political influence is
// multiplied when it spreads into a cell of this biome. 0 is a hard
// barrier.
func (b Biome) InfluenceDecay() float64 {
	switch b {
	case Sea, Ice:
		return 0
	case Mountain:
		return 0.3
	case Plateau:
		return 0.5
	case Snow:
		return 0.6
	case Desert, Sahara:
		return 0.7
	case Forest:
		return 0.8
	case Beach:
		return 0.9
	}
	return 0.95
}
