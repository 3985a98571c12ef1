package geo

import (
	"math"

	"github.com/rjh-mopjones/randlebrot/biome"
	"github.com/rjh-mopjones/randlebrot/various"
)

// SeaLevel is the continentalness below which a cell is water.
const SeaLevel = -0.025

// BiomeSplines combines the raw noise layers of a cell into an effective
// elevation, temperature and humidity and classifies the biome.
//
// The thresholds below are tuned by hand and the map tests are pinned to
// them, so change them with care.
type BiomeSplines struct {
	SeaLevel float64
}

// NewBiomeSplines returns an evaluator for the given sea level.
func NewBiomeSplines(seaLevel float64) BiomeSplines {
	return BiomeSplines{SeaLevel: seaLevel}
}

// Adjust returns the effective elevation, temperature and humidity.
//
// Peaks raise and erosion lowers the terrain, but only on land (the land
// factor ramps from 0 at sea level to 1 at 0.3 above it). Temperature drops
// with altitude and rises near plate boundaries (volcanic heat), and high
// ground casts a rain shadow.
func (s BiomeSplines) Adjust(cont, temp, tect, eros, peaks, humid float64) (elev, adjTemp, adjHumid float64) {
	landFactor := various.Clamp01((cont - s.SeaLevel) / 0.3)
	elev = cont + peaks*0.12*landFactor - eros*0.04*landFactor

	above := math.Max(elev-s.SeaLevel, 0)
	adjTemp = temp - above*60
	boundary := 1 - tect
	adjTemp += boundary * boundary * 8

	adjHumid = humid
	if above > 0.15 {
		adjHumid -= math.Min((above-0.15)*2.5, 0.4)
	}
	adjHumid = various.Clamp01(adjHumid)
	return elev, adjTemp, adjHumid
}

// Evaluate classifies a cell from its six raw layers.
func (s BiomeSplines) Evaluate(cont, temp, tect, eros, peaks, humid float64) biome.Biome {
	elev, t, h := s.Adjust(cont, temp, tect, eros, peaks, humid)
	above := elev - s.SeaLevel

	switch {
	case elev < s.SeaLevel:
		if t < -15 {
			return biome.Ice
		}
		return biome.Sea
	case above < 0.02:
		if t > 3 {
			return biome.Beach
		}
		return biome.Snow
	case t < 3:
		return biome.Snow
	case above > 0.22:
		if t > 65 {
			return biome.Plateau
		}
		return biome.Mountain
	case t > 55 && h < 0.3:
		if t > 70 && h < 0.15 {
			return biome.Sahara
		}
		return biome.Desert
	case above > 0.12:
		if h > 0.55 {
			return biome.Forest
		}
		if h < 0.25 && t > 40 {
			return biome.Desert
		}
		return biome.Mountain
	case above > 0.04:
		if h > 0.6 {
			return biome.Forest
		}
		if h > 0.35 {
			return biome.Plains
		}
		if t > 45 {
			return biome.Desert
		}
		return biome.Plains
	}
	if h > 0.5 {
		return biome.Forest
	}
	return biome.Plains
}

// ClassifyClimate is a coarse classifier that only looks at
// continentalness and temperature. It is used for fast previews.
func ClassifyClimate(cont, temp, seaLevel float64) biome.Biome {
	above := cont - seaLevel
	switch {
	case above < 0:
		if temp < -15 {
			return biome.Ice
		}
		return biome.Sea
	case above < 0.02:
		if temp > 3 {
			return biome.Beach
		}
		return biome.Snow
	case temp < 3:
		return biome.Snow
	case above > 0.3:
		if temp > 65 {
			return biome.Plateau
		}
		return biome.Mountain
	case temp > 70:
		return biome.Sahara
	case temp > 55:
		return biome.Desert
	case above > 0.12:
		return biome.Forest
	}
	return biome.Plains
}
